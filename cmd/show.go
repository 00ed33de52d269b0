package cmd

import (
	"fmt"
	"os"

	"github.com/go-faster/errors"
	"github.com/spf13/cobra"

	"github.com/docnova/go-docnova-client/docnova/config"
	"github.com/docnova/go-docnova-client/docnova/model"
	"github.com/docnova/go-docnova-client/docnova/png"
	"github.com/docnova/go-docnova-client/docnova/ubl"
)

var (
	ublOutFlag string
	qrOutFlag  string
)

var showCmd = &cobra.Command{
	Use:   "show <invoice-id>",
	Short: "Show one invoice from the current search window",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		loc := app.Localizer()

		if !app.Session.Current().IsAuthenticated {
			return errors.New(loc.NotLoggedIn())
		}

		state := app.Search(cmd.Context(), app.DefaultQuery())
		if state.Err != "" {
			return errors.New(state.Err)
		}

		id := args[0]
		var found *model.InvoiceRecord
		for i := range state.Items {
			if state.Items[i].ID == id {
				found = &state.Items[i]
				break
			}
		}
		if found == nil {
			return errors.Errorf("invoice %s is not in the current search window", id)
		}
		app.Results.Select(*found)

		printDetail(*found)

		if ublOutFlag != "" {
			data, err := ubl.Marshal(*found)
			if err != nil {
				return errors.Wrap(err, "ubl export")
			}
			if err := os.WriteFile(ublOutFlag, data, 0o644); err != nil {
				return err
			}
			fmt.Println("UBL:", ublOutFlag)
		}

		if qrOutFlag != "" {
			data, err := png.InvoiceQr(config.AppBaseURL, found.ID)
			if err != nil {
				return errors.Wrap(err, "qr export")
			}
			if err := os.WriteFile(qrOutFlag, data, 0o644); err != nil {
				return err
			}
			fmt.Println("QR:", qrOutFlag)
		}
		return nil
	},
}

func printDetail(inv model.InvoiceRecord) {
	loc := app.Localizer()

	fmt.Println("Invoice:", orDash(inv.InvoiceNumber))
	fmt.Println("  ID:             ", inv.ID)
	fmt.Println("  Issue date:     ", formatDate(inv.IssueDate))
	fmt.Println("  Due date:       ", formatDate(inv.DueDate))
	fmt.Println("  Document type:  ", string(inv.DocumentType))
	fmt.Println("  Status:         ", loc.StatusDisplay(inv.Status))
	fmt.Println("  Type:           ", orDash(string(inv.Type)))
	fmt.Println("  Supplier:       ", orDash(inv.SupplierName), loc.CountryName(inv.SupplierCountryCode))
	fmt.Println("  Supplier VAT:   ", orDash(inv.SupplierVat))
	fmt.Println("  Customer:       ", orDash(inv.CustomerName), loc.CountryName(inv.CustomerCountryCode))
	fmt.Println("  Customer VAT:   ", orDash(inv.CustomerVat))
	fmt.Println("  Net amount:     ", inv.TaxExclusiveAmount.String(), inv.Currency)
	fmt.Println("  Gross amount:   ", inv.TaxInclusiveAmount.String(), inv.Currency)
	if inv.PaymentDetails != nil {
		fmt.Println("  Payment status: ", loc.PaymentStatusDisplay(inv.PaymentDetails.PaymentStatus))
		fmt.Println("  Paid:           ", inv.PaymentDetails.PaidAmount.String(), inv.Currency)
		fmt.Println("  Remaining:      ", inv.PaymentDetails.RemainingAmount.String(), inv.Currency)
	}
	if inv.ErrorMessage != "" {
		fmt.Println("  Error:          ", inv.ErrorMessage)
	}
	fmt.Println("  Share link:     ", png.ShareLink(config.AppBaseURL, inv.ID))
}

func init() {
	showCmd.Flags().StringVar(&ublOutFlag, "ubl", "", "write the invoice as UBL XML to this path")
	showCmd.Flags().StringVar(&qrOutFlag, "qr", "", "write a share-link QR PNG to this path")
	rootCmd.AddCommand(showCmd)
}
