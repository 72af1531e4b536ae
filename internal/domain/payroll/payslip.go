package payroll

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"

	cryptoutil "paydesk/internal/platform/crypto"
	"paydesk/internal/platform/money"
)

// PayslipWriter renders a ledger record as a PDF payslip. When the crypto
// service is configured, the file is encrypted at rest and carries an
// .enc suffix.
type PayslipWriter struct {
	dir    string
	crypto *cryptoutil.Service
}

func NewPayslipWriter(dir string, crypto *cryptoutil.Service) *PayslipWriter {
	return &PayslipWriter{dir: dir, crypto: crypto}
}

func (w *PayslipWriter) Write(rec Record) (string, error) {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", err
	}
	filePath := filepath.Join(w.dir, rec.ID+".pdf")

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Payslip")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s", rec.EmployeeName))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Pay period: %s", rec.PayPeriod))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Processed: %s", rec.ProcessedDate.Format("2006-01-02")))
	pdf.Ln(10)
	pdf.Cell(0, 8, fmt.Sprintf("Hours: %.2f regular, %.2f overtime", rec.HoursWorked, rec.OvertimeHours))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Gross pay: %s", money.Format(rec.GrossPay)))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Taxes: %s", money.Format(rec.Taxes)))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Deductions: %s", money.Format(rec.Deductions)))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Net pay: %s", money.Format(rec.NetPay)))

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", err
	}

	if w.crypto != nil && w.crypto.Configured() {
		data, err := os.ReadFile(filePath)
		if err != nil {
			return "", err
		}
		encrypted, err := w.crypto.Encrypt(data)
		if err != nil {
			return "", err
		}
		encryptedPath := filePath + ".enc"
		if err := os.WriteFile(encryptedPath, encrypted, 0o600); err != nil {
			return "", err
		}
		if err := os.Remove(filePath); err != nil {
			return "", err
		}
		return encryptedPath, nil
	}

	return filePath, nil
}

// Read returns the payslip's plaintext PDF bytes, decrypting when the
// file was written encrypted.
func (w *PayslipWriter) Read(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if filepath.Ext(path) == ".enc" && w.crypto != nil {
		return w.crypto.Decrypt(data)
	}
	return data, nil
}
