package render

import "testing"

func TestProductNameLookup(t *testing.T) {
	cases := []struct {
		name                               string
		printType, printMethod, bindingType string
		want                               string
	}{
		{"canonical black white", "black_white", "single", "perfect", "흑백 단면 무선제본"},
		{"korean black white", "흑백", "single", "무선", "흑백 단면 무선제본"},
		{"ink color double ring", "ink_color", "double", "ring", "잉크 칼라 양면 링제본"},
		{"laser color saddle", "laser_color", "single", "saddle", "레이저 칼라 단면 중철제본"},
		{"korean laser label", "레이져칼라", "양면", "중철", "레이저 칼라 양면 중철제본"},
		{"defaults for empty", "", "", "", "흑백 단면 무선제본"},
		{"unknown codes pass through", "hologram", "triple", "staple", "hologram 단면 staple제본"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ProductName(tc.printType, tc.printMethod, tc.bindingType)
			if got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
			if got == "" {
				t.Fatalf("product name must never be empty")
			}
		})
	}
}
