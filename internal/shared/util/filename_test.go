package util

import "testing"

func TestExtensionOrDefault(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain jpg", "avatar.jpg", ".jpg"},
		{"uppercase", "PHOTO.PNG", ".png"},
		{"no extension", "avatar", ".jpg"},
		{"trailing dot", "avatar.", ".jpg"},
		{"multi dot", "archive.tar.gz", ".gz"},
		{"empty", "", ".jpg"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ExtensionOrDefault(tc.in, ".jpg"); got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}
