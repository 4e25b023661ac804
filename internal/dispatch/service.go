package dispatch

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/onnuriprint/printshop-backend/pkg/config"
	pkgerrors "github.com/onnuriprint/printshop-backend/pkg/errors"
	"github.com/onnuriprint/printshop-backend/pkg/logger"
)

// Channel is an order hand-off destination.
type Channel string

const (
	ChannelEmail       Channel = "email"
	ChannelChat        Channel = "chat"
	ChannelPhone       Channel = "phone"
	ChannelMarketplace Channel = "marketplace"
)

func (c Channel) IsValid() bool {
	switch c {
	case ChannelEmail, ChannelChat, ChannelPhone, ChannelMarketplace:
		return true
	}
	return false
}

// ParseChannel resolves a wire value to a Channel.
func ParseChannel(value string) (Channel, bool) {
	c := Channel(value)
	return c, c.IsValid()
}

// Input is the minimal order data a hand-off needs. PrintType and BindingType
// carry whatever label the form held; the summary shows them as given.
type Input struct {
	CustomerName   string `json:"customerName" validate:"required"`
	Pages          int    `json:"pages" validate:"required,gt=0"`
	Quantity       int    `json:"quantity" validate:"required,gt=0"`
	PrintType      string `json:"printType"`
	BindingType    string `json:"bindingType"`
	DisplayedTotal string `json:"displayedTotal"`
}

// ProviderOption is one webmail choice in the email hand-off.
type ProviderOption struct {
	Provider string `json:"provider"`
	Label    string `json:"label"`
	OpenURL  string `json:"open_url"`
}

// Payload is a completed hand-off. The caller opens OpenURL (or one of the
// provider options), puts Clipboard on the clipboard when present, and falls
// back to showing ManualCopy when clipboard access is denied. Clipboard
// denial is not an error.
type Payload struct {
	Channel      Channel          `json:"channel"`
	Summary      string           `json:"summary"`
	Clipboard    string           `json:"clipboard,omitempty"`
	ManualCopy   string           `json:"manual_copy,omitempty"`
	OpenURL      string           `json:"open_url,omitempty"`
	Options      []ProviderOption `json:"options,omitempty"`
	Instructions string           `json:"instructions,omitempty"`
}

// Service builds order hand-off payloads. Every channel reuses the same
// summary builder.
type Service interface {
	Dispatch(ctx context.Context, channel Channel, input Input) (*Payload, error)
}

type service struct {
	shop   config.ShopConfig
	logger *logger.Logger
}

// NewService wires the dispatchers with the shop contact points.
func NewService(shop config.ShopConfig, logg *logger.Logger) (Service, error) {
	if shop.OrderEmail == "" || shop.Phone == "" {
		return nil, fmt.Errorf("shop contact points required")
	}
	if logg == nil {
		return nil, fmt.Errorf("dispatch logger required")
	}
	return &service{shop: shop, logger: logg}, nil
}

func (s *service) Dispatch(ctx context.Context, channel Channel, input Input) (*Payload, error) {
	if !channel.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("unknown channel %q", channel))
	}
	if err := validateInput(input); err != nil {
		return nil, err
	}

	ctx = s.logger.WithChannel(ctx, string(channel))

	var payload *Payload
	switch channel {
	case ChannelEmail:
		payload = s.email(input)
	case ChannelChat:
		payload = s.chat(input)
	case ChannelPhone:
		payload = s.phone(input)
	case ChannelMarketplace:
		payload = s.marketplace(input)
	}

	s.logger.Info(ctx, "order hand-off built")
	return payload, nil
}

func validateInput(input Input) error {
	missing := make([]string, 0, 3)
	if strings.TrimSpace(input.CustomerName) == "" {
		missing = append(missing, "customerName")
	}
	if input.Pages <= 0 {
		missing = append(missing, "pages")
	}
	if input.Quantity <= 0 {
		missing = append(missing, "quantity")
	}
	if len(missing) > 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "required order fields missing").
			WithDetails(map[string]any{"fields": missing})
	}
	return nil
}

// Summary is the shared order summary block used by every channel.
func Summary(input Input) string {
	var b strings.Builder
	b.WriteString("견적 정보:\n")
	fmt.Fprintf(&b, "- 고객명: %s\n", strings.TrimSpace(input.CustomerName))
	fmt.Fprintf(&b, "- 페이지: %d페이지\n", input.Pages)
	if input.PrintType != "" {
		fmt.Fprintf(&b, "- 인쇄방식: %s\n", input.PrintType)
	}
	if input.BindingType != "" {
		fmt.Fprintf(&b, "- 제본방식: %s\n", input.BindingType)
	}
	fmt.Fprintf(&b, "- 수량: %d권\n", input.Quantity)
	if input.DisplayedTotal != "" {
		fmt.Fprintf(&b, "- 총 가격: %s\n", input.DisplayedTotal)
	}
	return strings.TrimRight(b.String(), "\n")
}

// Subject is the order mail subject line.
func Subject(customerName string) string {
	return "인쇄주문-" + strings.TrimSpace(customerName)
}

func (s *service) email(input Input) *Payload {
	body := fmt.Sprintf("받는 사람: %s\n제목: %s\n\n%s\n\n파일을 첨부하여 주문해주세요!",
		s.shop.OrderEmail, Subject(input.CustomerName), Summary(input))

	return &Payload{
		Channel:    ChannelEmail,
		Summary:    Summary(input),
		Clipboard:  body,
		ManualCopy: body,
		Options: []ProviderOption{
			{Provider: "gmail", Label: "Gmail", OpenURL: "https://mail.google.com/mail/u/0/#inbox"},
			{Provider: "naver", Label: "네이버 메일", OpenURL: "https://mail.naver.com/v2/folders/0/all"},
			{Provider: "daum", Label: "다음 메일", OpenURL: "https://mail.daum.net/top/INBOX"},
		},
		Instructions: "메일 작성 화면에서 견적 정보를 붙여넣고 파일을 첨부해주세요. 복사가 안 되면 아래 내용을 직접 입력해주세요.",
	}
}

func (s *service) chat(input Input) *Payload {
	return &Payload{
		Channel:      ChannelChat,
		Summary:      Summary(input),
		OpenURL:      s.shop.KakaoChannelURL,
		Instructions: "카카오톡 채널에서 견적 정보를 말씀해주시고 파일을 보내주세요.",
	}
}

func (s *service) phone(input Input) *Payload {
	return &Payload{
		Channel:      ChannelPhone,
		Summary:      Summary(input),
		OpenURL:      "tel:" + s.shop.Phone,
		Instructions: "전화 연결 후 견적 정보를 불러주세요.",
	}
}

func (s *service) marketplace(input Input) *Payload {
	listing := fmt.Sprintf("자동견적-%s-%d페이지-%d부",
		strings.TrimSpace(input.CustomerName), input.Pages, input.Quantity)

	return &Payload{
		Channel:      ChannelMarketplace,
		Summary:      Summary(input),
		OpenURL:      strings.TrimRight(s.shop.SmartstoreBaseURL, "/") + "/products/" + url.PathEscape(listing),
		Instructions: "스마트스토어에서 자동견적 상품으로 주문해주세요.",
	}
}
