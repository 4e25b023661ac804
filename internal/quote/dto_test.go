package quote

import "testing"

func TestNormalizedMapsKoreanSynonyms(t *testing.T) {
	cases := []struct {
		name string
		in   FormInput
		want FormInput
	}{
		{
			name: "korean labels",
			in:   FormInput{CustomerName: " 김철수 ", Pages: 10, PrintType: "흑백", PrintMethod: "양면", BindingType: "무선", Quantity: 2},
			want: FormInput{CustomerName: "김철수", Pages: 10, PrintType: "black_white", PrintMethod: "double", BindingType: "perfect", Quantity: 2, Size: "A4"},
		},
		{
			name: "canonical codes pass through",
			in:   FormInput{CustomerName: "Kim", Pages: 1, PrintType: "laser_color", PrintMethod: "single", BindingType: "saddle", Quantity: 1, Size: "B5"},
			want: FormInput{CustomerName: "Kim", Pages: 1, PrintType: "laser_color", PrintMethod: "single", BindingType: "saddle", Quantity: 1, Size: "B5"},
		},
		{
			name: "defaults applied",
			in:   FormInput{CustomerName: "Kim", Pages: 1, PrintType: "잉크칼라", BindingType: "링", Quantity: 1},
			want: FormInput{CustomerName: "Kim", Pages: 1, PrintType: "ink_color", PrintMethod: "single", BindingType: "ring", Quantity: 1, Size: "A4"},
		},
		{
			name: "unknown codes are opaque",
			in:   FormInput{CustomerName: "Kim", Pages: 1, PrintType: "hologram", PrintMethod: "triple", BindingType: "staple", Quantity: 1},
			want: FormInput{CustomerName: "Kim", Pages: 1, PrintType: "hologram", PrintMethod: "triple", BindingType: "staple", Quantity: 1, Size: "A4"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.in.Normalized(); got != tc.want {
				t.Fatalf("got %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestToPricingRequestUsesNormalizedValues(t *testing.T) {
	input := FormInput{CustomerName: "Kim", Pages: 10, PrintType: "흑백", BindingType: "무선", Quantity: 5}
	req := input.ToPricingRequest()

	if req.PrintType != "black_white" || req.BindingType != "perfect" {
		t.Fatalf("synonyms not normalized: %+v", req)
	}
	if req.PrintMethod != "single" || req.Size != "A4" {
		t.Fatalf("defaults not applied: %+v", req)
	}
}
