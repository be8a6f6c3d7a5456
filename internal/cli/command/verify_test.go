package command

import "testing"

func TestVerify(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantCode   int
		wantStdout string
	}{
		{"known token", []string{"-k", "secret", "verify", "--id", "42", "--token", "abd46de7b1"}, 0, "true\n"},
		{"alias", []string{"-k", "secret", "v", "--id", "42", "-t", "abd46de7b1"}, 0, "true\n"},
		{"fractional id", []string{"-k", "secret", "verify", "--id", "42.7", "--token", "abd46de7b1"}, 0, "true\n"},
		{"tampered hash", []string{"-k", "secret", "verify", "--id", "42", "--token", "abd46de7b2"}, 1, "false\n"},
		{"wrong id", []string{"-k", "secret", "verify", "--id", "43", "--token", "abd46de7b1"}, 1, "false\n"},
		{"wrong key", []string{"-k", "other", "verify", "--id", "42", "--token", "abd46de7b1"}, 1, "false\n"},
		{"yaml output", []string{"-k", "secret", "-o", "yaml", "verify", "--id", "42", "--token", "abd46de7b1"}, 0, "true\n"},
		{"table output", []string{"-k", "secret", "-o", "table", "verify", "--id", "42", "--token", "abd46de7b2"}, 1, "false\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := run(t, tt.args...)
			if res.code != tt.wantCode {
				t.Errorf("exit code = %d, want %d (stderr %q)", res.code, tt.wantCode, res.stderr)
			}
			if res.stdout != tt.wantStdout {
				t.Errorf("stdout = %q, want %q", res.stdout, tt.wantStdout)
			}
			if res.stderr != "" {
				t.Errorf("stderr = %q, want empty", res.stderr)
			}
		})
	}
}

func TestVerify_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code string
	}{
		{"short token", []string{"-k", "secret", "verify", "--id", "42", "--token", "short"}, "SA-TOKN-4000"},
		{"missing token", []string{"-k", "secret", "verify", "--id", "42"}, "SA-ARG-1002"},
		{"missing id", []string{"-k", "secret", "verify", "--token", "abd46de7b1"}, "SA-ARG-1002"},
		{"negative id", []string{"-k", "secret", "verify", "--id", "-1", "--token", "abd46de7b1"}, "SA-TOKN-4002"},
		{"missing key", []string{"verify", "--id", "42", "--token", "abd46de7b1"}, "SA-CONF-4001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectError(t, run(t, tt.args...), tt.code)
		})
	}
}
