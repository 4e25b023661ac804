package render

import (
	"html/template"

	"github.com/onnuriprint/printshop-backend/pkg/config"
)

type templateData struct {
	Shop config.ShopConfig
	Doc  *Document

	UnitPrintPrice string
	PrintPrice     string
	BindingPrice   string
	UnitPrice      string
	TotalPrice     string
	Tax            string
	GrandTotal     string
	TotalWithTax   string
	Quantity       string
}

func newTemplateData(shop config.ShopConfig, doc *Document) templateData {
	return templateData{
		Shop:           shop,
		Doc:            doc,
		UnitPrintPrice: Won(doc.UnitPrintPrice),
		PrintPrice:     Won(doc.PrintPrice),
		BindingPrice:   Won(doc.BindingPrice),
		UnitPrice:      Won(doc.UnitPrice),
		TotalPrice:     Won(doc.TotalPrice),
		Tax:            Won(doc.Tax),
		GrandTotal:     Won(doc.GrandTotal),
		TotalWithTax:   Won(doc.TotalWithTax),
		Quantity:       Count(doc.Quantity),
	}
}

var compactTemplate = template.Must(template.New("compact").Parse(`<div class="quote-card" data-kind="compact">
  <h3>견적 요약</h3>
  <dl class="quote-breakdown">
    <dt>품명</dt><dd>{{.Doc.ProductName}}</dd>
    <dt>규격</dt><dd>{{.Doc.Size}}</dd>
    <dt>페이지당 단가</dt><dd>{{.UnitPrintPrice}}</dd>
    <dt>총 출력 가격</dt><dd>{{.PrintPrice}}</dd>
    <dt>제본 가격</dt><dd>{{.BindingPrice}}</dd>
    <dt>단가 (출력+제본)</dt><dd>{{.UnitPrice}}</dd>
    <dt>수량</dt><dd>{{.Quantity}}</dd>
    <dt>총 가격</dt><dd>{{.TotalPrice}}</dd>
  </dl>
  <p class="quote-total">총 견적 금액 (부가세 포함): <strong>{{.TotalWithTax}}</strong></p>
</div>
`))

var formalTemplate = template.Must(template.New("formal").Parse(`<div class="quote-sheet" data-kind="formal">
  <h2>견 적 서</h2>
  <section class="supplier">
    <table>
      <tr><th>상호</th><td>{{.Shop.Name}}</td><th>대표자</th><td>{{.Shop.Representative}}</td></tr>
      <tr><th>등록번호</th><td colspan="3">{{.Shop.RegistrationNumber}}</td></tr>
      <tr><th>주소</th><td colspan="3">{{.Shop.Address}}</td></tr>
      <tr><th>업태</th><td>{{.Shop.BusinessType}}</td><th>종목</th><td>{{.Shop.BusinessItems}}</td></tr>
      <tr><th>계좌번호</th><td colspan="3">{{.Shop.BankAccount}}</td></tr>
      <tr><th>연락처</th><td>{{.Shop.Phone}}</td><th>휴대폰</th><td>{{.Shop.Mobile}}</td></tr>
    </table>
  </section>
  <section class="recipient">
    <p>{{.Doc.CustomerName}} 귀하</p>
    <p>아래와 같이 견적합니다.</p>
    <p class="issued-date">{{.Doc.IssuedDate}}</p>
  </section>
  <section class="items">
    <table>
      <thead>
        <tr><th>품명</th><th>규격</th><th>수량</th><th>단가</th><th>공급가액</th><th>세액</th></tr>
      </thead>
      <tbody>
        <tr>
          <td>{{.Doc.ProductName}}</td>
          <td>{{.Doc.Size}}</td>
          <td>{{.Quantity}}</td>
          <td>{{.UnitPrice}}</td>
          <td>{{.TotalPrice}}</td>
          <td>{{.Tax}}</td>
        </tr>
      </tbody>
    </table>
  </section>
  <p class="grand-total">합계 금액: <strong>{{.GrandTotal}}</strong></p>
  <footer class="signature">
    <p>{{.Doc.IssuedDate}}</p>
    <p>{{.Shop.Name}}</p>
    <p>{{.Shop.Representative}}</p>
  </footer>
</div>
`))

func templateForStyle(style Style) *template.Template {
	if style == StyleCompact {
		return compactTemplate
	}
	return formalTemplate
}
