package dispatch

import (
	"context"
	"net/url"
	"os"
	"strings"
	"testing"

	"github.com/onnuriprint/printshop-backend/pkg/config"
	pkgerrors "github.com/onnuriprint/printshop-backend/pkg/errors"
	"github.com/onnuriprint/printshop-backend/pkg/logger"
)

func testShop() config.ShopConfig {
	return config.ShopConfig{
		OrderEmail:        "print7123@naver.com",
		Phone:             "02-6338-7123",
		KakaoChannelURL:   "http://pf.kakao.com/_kjRIj",
		SmartstoreBaseURL: "https://smartstore.naver.com/print7123",
	}
}

func newTestService(t *testing.T) Service {
	t.Helper()
	svc, err := NewService(testShop(), logger.New(logger.Options{ServiceName: "dispatch-test", Output: os.Stderr}))
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func sampleInput() Input {
	return Input{
		CustomerName:   "김철수",
		Pages:          10,
		Quantity:       5,
		PrintType:      "흑백",
		BindingType:    "무선",
		DisplayedTotal: "5,500원",
	}
}

func TestSummarySharedAcrossChannels(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	want := Summary(sampleInput())
	for _, channel := range []Channel{ChannelEmail, ChannelChat, ChannelPhone, ChannelMarketplace} {
		payload, err := svc.Dispatch(ctx, channel, sampleInput())
		if err != nil {
			t.Fatalf("%s dispatch failed: %v", channel, err)
		}
		if payload.Summary != want {
			t.Errorf("%s summary diverged:\n%s", channel, payload.Summary)
		}
	}
}

func TestSummaryContent(t *testing.T) {
	got := Summary(sampleInput())
	for _, want := range []string{
		"견적 정보:",
		"- 고객명: 김철수",
		"- 페이지: 10페이지",
		"- 인쇄방식: 흑백",
		"- 제본방식: 무선",
		"- 수량: 5권",
		"- 총 가격: 5,500원",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("summary missing %q:\n%s", want, got)
		}
	}

	// optional lines drop out cleanly
	short := Summary(Input{CustomerName: "Kim", Pages: 1, Quantity: 1})
	if strings.Contains(short, "인쇄방식") || strings.Contains(short, "총 가격") {
		t.Errorf("empty optional fields must be omitted:\n%s", short)
	}
}

func TestEmailDispatchOffersProvidersAndFallback(t *testing.T) {
	svc := newTestService(t)
	payload, err := svc.Dispatch(context.Background(), ChannelEmail, sampleInput())
	if err != nil {
		t.Fatalf("dispatch failed: %v", err)
	}

	if len(payload.Options) != 3 {
		t.Fatalf("expected 3 provider options, got %d", len(payload.Options))
	}
	providers := map[string]bool{}
	for _, opt := range payload.Options {
		providers[opt.Provider] = true
		if opt.OpenURL == "" {
			t.Errorf("provider %s missing open url", opt.Provider)
		}
	}
	for _, want := range []string{"gmail", "naver", "daum"} {
		if !providers[want] {
			t.Errorf("missing provider %s", want)
		}
	}

	if !strings.Contains(payload.Clipboard, "받는 사람: print7123@naver.com") {
		t.Errorf("clipboard payload missing recipient:\n%s", payload.Clipboard)
	}
	if !strings.Contains(payload.Clipboard, "제목: 인쇄주문-김철수") {
		t.Errorf("clipboard payload missing subject:\n%s", payload.Clipboard)
	}
	if payload.ManualCopy != payload.Clipboard {
		t.Errorf("manual-copy fallback must mirror the clipboard payload")
	}
}

func TestChatDispatchHasNoClipboardStep(t *testing.T) {
	svc := newTestService(t)
	payload, err := svc.Dispatch(context.Background(), ChannelChat, sampleInput())
	if err != nil {
		t.Fatalf("dispatch failed: %v", err)
	}

	if payload.OpenURL != "http://pf.kakao.com/_kjRIj" {
		t.Fatalf("unexpected chat url %s", payload.OpenURL)
	}
	if payload.Clipboard != "" {
		t.Fatalf("chat channel must not use the clipboard")
	}
	if payload.Instructions == "" {
		t.Fatalf("chat channel shows inline instructions instead")
	}
}

func TestPhoneDispatchUsesTelScheme(t *testing.T) {
	svc := newTestService(t)
	payload, err := svc.Dispatch(context.Background(), ChannelPhone, sampleInput())
	if err != nil {
		t.Fatalf("dispatch failed: %v", err)
	}
	if payload.OpenURL != "tel:02-6338-7123" {
		t.Fatalf("unexpected phone url %s", payload.OpenURL)
	}
}

func TestMarketplaceDispatchPercentEncodesListing(t *testing.T) {
	svc := newTestService(t)
	payload, err := svc.Dispatch(context.Background(), ChannelMarketplace, sampleInput())
	if err != nil {
		t.Fatalf("dispatch failed: %v", err)
	}

	if !strings.HasPrefix(payload.OpenURL, "https://smartstore.naver.com/print7123/products/") {
		t.Fatalf("unexpected marketplace url %s", payload.OpenURL)
	}

	segment := strings.TrimPrefix(payload.OpenURL, "https://smartstore.naver.com/print7123/products/")
	if strings.ContainsAny(segment, " /") {
		t.Fatalf("listing segment not encoded: %s", segment)
	}
	decoded, err := url.PathUnescape(segment)
	if err != nil {
		t.Fatalf("decode segment: %v", err)
	}
	if decoded != "자동견적-김철수-10페이지-5부" {
		t.Fatalf("unexpected listing %q", decoded)
	}
}

func TestDispatchValidation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Dispatch(ctx, Channel("fax"), sampleInput()); pkgerrors.As(err) == nil {
		t.Fatalf("expected validation error for unknown channel")
	}

	input := sampleInput()
	input.CustomerName = ""
	_, err := svc.Dispatch(ctx, ChannelEmail, input)
	coded := pkgerrors.As(err)
	if coded == nil || coded.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected VALIDATION_ERROR, got %v", err)
	}
}
