package cmd

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/go-faster/errors"
	"github.com/spf13/cobra"

	"github.com/docnova/go-docnova-client/docnova/filter"
	"github.com/docnova/go-docnova-client/docnova/model"
)

var (
	startFlag           string
	endFlag             string
	documentTypeFlag    string
	statusFlag          string
	typeFlag            string
	paymentStatusFlag   string
	customerCountryFlag string
	supplierCountryFlag string
	currencyFlag        string
	pageFlag            int
	sizeFlag            int
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Search invoices and list one page of results",
	RunE: func(cmd *cobra.Command, args []string) error {
		loc := app.Localizer()

		if !app.Session.Current().IsAuthenticated {
			return errors.New(loc.NotLoggedIn())
		}

		values, err := formValues()
		if err != nil {
			return err
		}

		query, active := filter.Compose(app.DefaultQuery(), values)
		if pageFlag != filter.DefaultPage || sizeFlag != filter.DefaultSize {
			query = filter.WithPage(query, pageFlag, sizeFlag)
		}

		state := app.Search(cmd.Context(), query)
		if state.Err != "" {
			return errors.New(state.Err)
		}

		printChips(active)

		items := filter.Apply(state.Items, active)
		if len(items) == 0 {
			fmt.Println(loc.NoData())
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NUMBER\tDATE\tCOMPANY\tAMOUNT\tSTATUS\tCOUNTRY\tPAYMENT")
		for _, inv := range items {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
				orDash(inv.InvoiceNumber),
				formatDate(inv.IssueDate),
				orDash(inv.CustomerName),
				formatAmount(inv),
				loc.StatusDisplay(inv.Status),
				loc.CountryName(inv.CustomerCountryCode),
				paymentDisplay(inv))
		}
		if err := w.Flush(); err != nil {
			return err
		}

		if len(items) != len(state.Items) {
			fmt.Printf("%d / %d (page %d, size %d, total %d)\n",
				len(items), len(state.Items),
				state.Pagination.Page, state.Pagination.Size, state.Pagination.Total)
		} else {
			fmt.Printf("page %d, size %d, total %d\n",
				state.Pagination.Page, state.Pagination.Size, state.Pagination.Total)
		}
		return nil
	},
}

func formValues() (filter.FormValues, error) {
	v := filter.FormValues{
		DocumentType:        model.DocumentType(documentTypeFlag),
		Status:              model.InvoiceStatus(statusFlag),
		Type:                model.InvoiceType(typeFlag),
		PaymentStatus:       model.PaymentStatus(paymentStatusFlag),
		CustomerCountryCode: customerCountryFlag,
		SupplierCountryCode: supplierCountryFlag,
		Currency:            currencyFlag,
	}

	if (startFlag == "") != (endFlag == "") {
		return v, errors.New("--start and --end must be given together")
	}
	if startFlag != "" {
		start, err := time.Parse("2006-01-02", startFlag)
		if err != nil {
			return v, errors.Wrap(err, "--start")
		}
		end, err := time.Parse("2006-01-02", endFlag)
		if err != nil {
			return v, errors.Wrap(err, "--end")
		}
		v.DateRange = &filter.DateRange{Start: start, End: end}
	}
	return v, nil
}

func printChips(active filter.ActiveFilterSet) {
	if len(active) == 0 {
		return
	}
	loc := app.Localizer()

	names := make([]string, 0, len(active))
	for name := range active {
		names = append(names, string(name))
	}
	sort.Strings(names)

	fmt.Printf("%s:", loc.ActiveFiltersLabel())
	for _, name := range names {
		fmt.Printf(" [%s: %s]", loc.FilterLabel(name), active[filter.Name(name)])
	}
	fmt.Println()
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("02/01/2006")
}

func formatAmount(inv model.InvoiceRecord) string {
	if inv.TaxInclusiveAmount.IsZero() {
		return "-"
	}
	currency := inv.Currency
	if currency == "" {
		currency = "EUR"
	}
	return fmt.Sprintf("%s %s", inv.TaxInclusiveAmount.String(), currency)
}

func paymentDisplay(inv model.InvoiceRecord) string {
	if inv.PaymentDetails == nil {
		return "-"
	}
	return app.Localizer().PaymentStatusDisplay(inv.PaymentDetails.PaymentStatus)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func init() {
	listCmd.Flags().StringVar(&startFlag, "start", "", "start of the date range (YYYY-MM-DD)")
	listCmd.Flags().StringVar(&endFlag, "end", "", "end of the date range (YYYY-MM-DD)")
	listCmd.Flags().StringVar(&documentTypeFlag, "document-type", "", "OUTGOING or INCOMING")
	listCmd.Flags().StringVar(&statusFlag, "status", "", "invoice status filter")
	listCmd.Flags().StringVar(&typeFlag, "type", "", "invoice type filter")
	listCmd.Flags().StringVar(&paymentStatusFlag, "payment-status", "", "payment status filter")
	listCmd.Flags().StringVar(&customerCountryFlag, "customer-country", "", "client-side customer country filter")
	listCmd.Flags().StringVar(&supplierCountryFlag, "supplier-country", "", "client-side supplier country filter")
	listCmd.Flags().StringVar(&currencyFlag, "currency", "", "client-side currency filter")
	listCmd.Flags().IntVar(&pageFlag, "page", filter.DefaultPage, "page index")
	listCmd.Flags().IntVar(&sizeFlag, "size", filter.DefaultSize, "page size")
	rootCmd.AddCommand(listCmd)
}
