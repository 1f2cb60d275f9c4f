package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"payeerapi/client/payeer"
)

var (
	okColor   = color.New(color.FgGreen, color.Bold)
	failColor = color.New(color.FgRed, color.Bold)
)

func (a *app) balanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "balance",
		Short: "Show wallet balances",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			balances, err := a.client.Balance()
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), balances)
		},
	}
}

func (a *app) checkUserCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check-user <wallet>",
		Short: "Check that a Payeer account exists",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			exists, err := a.client.CheckUser(args[0])
			if err != nil {
				return err
			}
			printVerdict(cmd.OutOrStdout(), exists, args[0]+" exists", args[0]+" not found")
			return nil
		},
	}
}

func (a *app) ratesCmd() *cobra.Command {
	var withdrawal bool
	cmd := &cobra.Command{
		Use:   "rates",
		Short: "Show automatic conversion rates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			direction := payeer.RATE_DEPOSIT
			if withdrawal {
				direction = payeer.RATE_WITHDRAWAL
			}
			rates, err := a.client.ExchangeRate(direction)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), rates)
		},
	}
	cmd.Flags().BoolVar(&withdrawal, "withdrawal", false, "show withdrawal rates instead of deposit rates")
	return cmd
}

func (a *app) paySystemsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pay-systems",
		Short: "List payment systems available for payouts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := a.client.PaySystems()
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), list)
		},
	}
}

func (a *app) historyInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history-info <history-id>",
		Short: "Show a single transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := a.client.HistoryInfo(args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), info)
		},
	}
}

func (a *app) shopOrderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shop-order <shop-id> <order-id>",
		Short: "Show a store transaction",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := a.client.ShopOrderInfo(args[0], args[1])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), resp)
		},
	}
}

func (a *app) historyCmd() *cobra.Command {
	var (
		query    payeer.HistoryQuery
		sort     string
		kind     string
		from, to string
	)
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List transactions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			query.Sort = payeer.SortOrder(sort)
			query.Type = payeer.HistoryType(kind)
			var err error
			if query.From, err = parseTime(from); err != nil {
				return fmt.Errorf("--from: %w", err)
			}
			if query.To, err = parseTime(to); err != nil {
				return fmt.Errorf("--to: %w", err)
			}
			history, err := a.client.History(query)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), history)
		},
	}
	fs := cmd.Flags()
	fs.StringVar(&sort, "sort", "", "sorting by date: asc or desc")
	fs.IntVar(&query.Count, "count", 0, "number of records (max 1000)")
	fs.StringVar(&from, "from", "", "start of the period, 2006-01-02 or 2006-01-02 15:04:05")
	fs.StringVar(&to, "to", "", "end of the period, same formats as --from")
	fs.StringVar(&kind, "type", "", "incoming or outgoing")
	fs.StringVar(&query.Append, "append", "", "id of the last transaction of the previous page")
	return cmd
}

func (a *app) transferCmd() *cobra.Command {
	var (
		req    payeer.TransferRequest
		sum    string
		curIn  string
		curOut string
	)
	cmd := &cobra.Command{
		Use:   "transfer",
		Short: "Transfer funds to another Payeer wallet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := decimal.NewFromString(sum)
			if err != nil {
				return fmt.Errorf("--sum: %w", err)
			}
			req.Sum = amount
			req.CurIn = payeer.Currency(curIn)
			req.CurOut = payeer.Currency(curOut)
			ok, err := a.client.Transfer(req)
			if err != nil {
				return err
			}
			printVerdict(cmd.OutOrStdout(), ok, "transfer sent", "transfer was not registered")
			return nil
		},
	}
	fs := cmd.Flags()
	fs.StringVar(&req.To, "to", "", "destination wallet, e.g. P1000000")
	fs.StringVar(&sum, "sum", "", "amount withdrawn; fees are taken from the recipient")
	fs.StringVar(&curIn, "cur-in", string(payeer.CUR_USD), "withdrawal currency")
	fs.StringVar(&curOut, "cur-out", string(payeer.CUR_USD), "deposit currency")
	fs.StringVar(&req.Comment, "comment", "", "comment on the transfer")
	fs.BoolVar(&req.Protect, "protect", false, "enable transaction protection")
	fs.IntVar(&req.ProtectPeriod, "protect-period", 0, "protection period in days (1-30)")
	fs.StringVar(&req.ProtectCode, "protect-code", "", "protection code")
	_ = cmd.MarkFlagRequired("to")
	_ = cmd.MarkFlagRequired("sum")
	return cmd
}

type payoutFlags struct {
	ps      string
	account string
	sum     string
	curIn   string
	curOut  string
}

func (f *payoutFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.ps, "ps", "", "payment system id, see pay-systems")
	fs.StringVar(&f.account, "account", "", "recipient account in the payment system")
	fs.StringVar(&f.sum, "sum", "", "amount withdrawn")
	fs.StringVar(&f.curIn, "cur-in", string(payeer.CUR_USD), "withdrawal currency")
	fs.StringVar(&f.curOut, "cur-out", string(payeer.CUR_USD), "deposit currency")
}

func (f *payoutFlags) request() (payeer.PayoutRequest, error) {
	amount, err := decimal.NewFromString(f.sum)
	if err != nil {
		return payeer.PayoutRequest{}, fmt.Errorf("--sum: %w", err)
	}
	return payeer.PayoutRequest{
		PaySystem:     f.ps,
		AccountNumber: f.account,
		SumIn:         amount,
		CurIn:         payeer.Currency(f.curIn),
		CurOut:        payeer.Currency(f.curOut),
	}, nil
}

func (a *app) checkOutputCmd() *cobra.Command {
	flags := &payoutFlags{}
	cmd := &cobra.Command{
		Use:   "check-output",
		Short: "Check that a payout is possible without creating it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := flags.request()
			if err != nil {
				return err
			}
			ok, err := a.client.CheckOutput(req)
			if err != nil {
				return err
			}
			printVerdict(cmd.OutOrStdout(), ok, "payout possible", "payout rejected")
			return nil
		},
	}
	flags.register(cmd.Flags())
	return cmd
}

func (a *app) outputCmd() *cobra.Command {
	flags := &payoutFlags{}
	cmd := &cobra.Command{
		Use:   "output",
		Short: "Create a payout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := flags.request()
			if err != nil {
				return err
			}
			resp, err := a.client.Output(req)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), resp)
		},
	}
	flags.register(cmd.Flags())
	return cmd
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printVerdict(w io.Writer, ok bool, yes string, no string) {
	if ok {
		_, _ = okColor.Fprintln(w, yes)
		return
	}
	_, _ = failColor.Fprintln(w, no)
}

func parseTime(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	for _, layout := range []string{"2006-01-02 15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time %q", value)
}
