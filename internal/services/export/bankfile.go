package export

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Rajesh25lab/payroll-phase3-v2/internal/models"
)

// Constants required by the bank's bulk-transfer ingestion format.
const (
	bankName        = "KOTAK MAHINDRA"
	defaultIFSC     = "KKBK0000001"
	defaultEmployee = "Employee"
	currencyINR     = "INR"
	txTypeNEFT      = "NEFT"
	separatorWidth  = 200
)

var bankFileColumns = []string{
	"Sr.No", "Employee ID", "Name", "Bank Name", "Account Number", "IFSC Code",
	"Amount", "Currency", "Transaction Type", "Beneficiary Name", "Beneficiary Address",
	"City", "State", "PIN Code", "Email", "Mobile", "Reference Number", "Narration",
	"Remarks", "Department", "Cost Center", "Payment Date", "Status", "Timestamp",
}

// BankFileFormatter renders the fixed 24-column tab-delimited transfer file.
type BankFileFormatter struct{}

func (BankFileFormatter) Render(batch *models.Batch, payments []models.Payment, now time.Time) (string, string, error) {
	generated := now.UTC()
	paymentDate := generated.Format("2006-01-02")
	timestamp := generated.Format(time.RFC3339)

	var b strings.Builder
	fmt.Fprintf(&b, "PAYROLL BATCH: %s\n", batch.Name)
	fmt.Fprintf(&b, "PERIOD: %s/%d\n", batch.Month, batch.Year)
	fmt.Fprintf(&b, "GENERATED: %s\n", timestamp)
	b.WriteString(strings.Repeat("=", separatorWidth) + "\n\n")

	b.WriteString(strings.Join(bankFileColumns, "\t") + "\n")
	b.WriteString(strings.Repeat("-", separatorWidth) + "\n")

	for i, p := range payments {
		name := p.EmployeeName
		if name == "" {
			name = defaultEmployee
		}
		ifsc := p.IFSCCode
		if ifsc == "" {
			ifsc = defaultIFSC
		}
		row := []string{
			strconv.Itoa(i + 1),
			p.EmployeeID,
			name,
			bankName,
			p.AccountNumber,
			ifsc,
			p.Amount.String(),
			currencyINR,
			txTypeNEFT,
			name,
			"Address",
			"City",
			"State",
			"PIN",
			p.Email,
			p.Mobile,
			fmt.Sprintf("REF-%d-%d", batch.ID, i+1),
			fmt.Sprintf("Salary %s/%d", batch.Month, batch.Year),
			"Payroll Processing",
			"HR",
			"PAYROLL",
			paymentDate,
			"PENDING",
			timestamp,
		}
		b.WriteString(strings.Join(row, "\t") + "\n")
	}

	total := sumAmounts(payments)
	b.WriteString("\n" + strings.Repeat("=", separatorWidth) + "\n")
	fmt.Fprintf(&b, "TOTAL RECORDS: %d\n", len(payments))
	fmt.Fprintf(&b, "TOTAL AMOUNT: ₹%s\n", total.StringFixed(2))

	fileName := fmt.Sprintf("BANK_%s_%d.txt", batch.Month, batch.Year)
	return b.String(), fileName, nil
}
