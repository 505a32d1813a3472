package service

import "testing"

func TestReadCookieToken(t *testing.T) {
	cases := []struct {
		name   string
		raw    string
		want   string
		wantOK bool
	}{
		{"empty string", "", "", false},
		{"single pair", "token=abc", "abc", true},
		{"trimmed key", "theme=dark;  token=abc", "abc", true},
		{"first match wins", "token=first; token=second", "first", true},
		{"no match", "theme=dark; lang=es", "", false},
		{"prefix is not a match", "token2=abc; xtoken=def", "", false},
		{"malformed entries skipped", "garbage; ; token=abc", "abc", true},
		{"value with equals kept whole", "token=a=b=c", "a=b=c", true},
		{"value after first equals", "token=abc=def", "abc=def", true},
		{"empty value is present", "token=", "", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ReadCookieToken(tc.raw, "token")
			if got != tc.want || ok != tc.wantOK {
				t.Fatalf("expected %q,%v got %q,%v", tc.want, tc.wantOK, got, ok)
			}
		})
	}
}

func TestCookieSession_ReadToken(t *testing.T) {
	s := CookieSession{Raw: "a=1; token=xyz"}
	if v, ok := s.ReadToken("token"); !ok || v != "xyz" {
		t.Fatalf("expected xyz, got %q,%v", v, ok)
	}
}
