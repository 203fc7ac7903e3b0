package export

import (
	"encoding/xml"
	"fmt"
	"time"

	"github.com/Rajesh25lab/payroll-phase3-v2/internal/models"
)

type tallyDocument struct {
	XMLName  xml.Name      `xml:"TALLY"`
	Envelope tallyEnvelope `xml:"ENVELOPE"`
}

type tallyEnvelope struct {
	Header tallyHeader `xml:"HEADER"`
	Body   tallyBody   `xml:"BODY"`
}

type tallyHeader struct {
	TallyRequest string `xml:"TALLYREQUEST"`
}

type tallyBody struct {
	ImportData tallyImportData `xml:"IMPORTDATA"`
}

type tallyImportData struct {
	RequestDesc tallyRequestDesc `xml:"REQUESTDESC"`
	Response    tallyResponse    `xml:"RESPONSE"`
}

type tallyRequestDesc struct {
	ReportName      string               `xml:"REPORTNAME"`
	StaticVariables tallyStaticVariables `xml:"STATICVARIABLES"`
}

type tallyStaticVariables struct {
	CurrentCompany string `xml:"SVCURRENTCOMPANY"`
}

type tallyResponse struct {
	Voucher tallyVoucher `xml:"VOUCHER"`
}

type tallyVoucher struct {
	Date            string             `xml:"DATE"`
	VoucherTypeName string             `xml:"VOUCHERTYPENAME"`
	Reference       string             `xml:"REFERENCE"`
	Narration       string             `xml:"NARRATION"`
	LedgerEntries   []tallyLedgerEntry `xml:"ALLLEDGERENTRIES>LEDGERENTRYTOTAL"`
}

type tallyLedgerEntry struct {
	LedgerName       string `xml:"LEDGERNAME"`
	Amount           string `xml:"AMOUNT"`
	IsDeemedPositive string `xml:"ISDEEMEDPOSITIVE"`
}

// TallyFormatter renders a balanced double-entry journal voucher for the
// accounting system's import pipeline.
type TallyFormatter struct {
	Company string
}

func (f TallyFormatter) Render(batch *models.Batch, payments []models.Payment, now time.Time) (string, string, error) {
	total := sumAmounts(payments)

	// The two entries must always be exact negatives of each other; the
	// importer rejects unbalanced vouchers. Negating a zero total still
	// renders "0.00".
	doc := tallyDocument{
		Envelope: tallyEnvelope{
			Header: tallyHeader{TallyRequest: "ImportData"},
			Body: tallyBody{
				ImportData: tallyImportData{
					RequestDesc: tallyRequestDesc{
						ReportName:      "Journal",
						StaticVariables: tallyStaticVariables{CurrentCompany: f.Company},
					},
					Response: tallyResponse{
						Voucher: tallyVoucher{
							Date:            now.UTC().Format("2006-01-02"),
							VoucherTypeName: "Journal",
							Reference:       fmt.Sprintf("PAYROLL-%s-%d", batch.Month, batch.Year),
							Narration:       fmt.Sprintf("Salary Payment for %s/%d", batch.Month, batch.Year),
							LedgerEntries: []tallyLedgerEntry{
								{
									LedgerName:       "Salary Expense",
									Amount:           total.StringFixed(2),
									IsDeemedPositive: "Yes",
								},
								{
									LedgerName:       "Bank Account",
									Amount:           total.Neg().StringFixed(2),
									IsDeemedPositive: "No",
								},
							},
						},
					},
				},
			},
		},
	}

	out, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", "", fmt.Errorf("marshal tally voucher: %w", err)
	}

	fileName := fmt.Sprintf("TALLY_%s_%d.txt", batch.Month, batch.Year)
	return xml.Header + string(out) + "\n", fileName, nil
}
