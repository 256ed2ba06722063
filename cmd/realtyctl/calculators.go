package main

import (
	"encoding/json"
	"io"

	"github.com/Dan9191/realty-service/internal/calculator"
	"github.com/Dan9191/realty-service/internal/models"
	"github.com/Dan9191/realty-service/internal/neighborhoods"
	"github.com/spf13/cobra"
)

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newMortgageCmd() *cobra.Command {
	var in models.MortgageInput
	var pmi float64
	var fullSchedule bool

	cmd := &cobra.Command{
		Use:   "mortgage",
		Short: "Monthly payment breakdown for a home purchase",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("pmi") {
				in.PMIMonthly = &pmi
			}
			out, err := calculator.Mortgage(in)
			if err != nil {
				return err
			}
			if fullSchedule && out.LoanAmount > 0 {
				rows, err := calculator.AmortizationSchedule(out.LoanAmount,
					calculator.MonthlyRate(in.InterestRate), calculator.NumPayments(in.LoanTermYears))
				if err != nil {
					return err
				}
				out.Schedule = rows
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}

	cmd.Flags().Float64Var(&in.HomePrice, "price", 0, "Home price")
	cmd.Flags().Float64Var(&in.DownPayment, "down", 20, "Down payment, percent or dollars")
	cmd.Flags().StringVar(&in.DownPaymentType, "down-type", models.DownPaymentPercent, "percent or dollar")
	cmd.Flags().Float64Var(&in.InterestRate, "rate", 6.5, "Annual interest rate, percent")
	cmd.Flags().IntVar(&in.LoanTermYears, "term", 30, "Loan term in years")
	cmd.Flags().Float64Var(&in.PropertyTaxesAnnual, "taxes", 0, "Annual property taxes")
	cmd.Flags().Float64Var(&in.HomeInsuranceAnnual, "insurance", 0, "Annual homeowners insurance")
	cmd.Flags().Float64Var(&in.HOAFeesMonthly, "hoa", 0, "Monthly HOA fees")
	cmd.Flags().Float64Var(&pmi, "pmi", 0, "Monthly PMI, overrides the estimate")
	cmd.Flags().BoolVar(&fullSchedule, "schedule", false, "Print every month instead of one row per year")
	_ = cmd.MarkFlagRequired("price")

	return cmd
}

func newNetProceedsCmd() *cobra.Command {
	var in models.NetProceedsInput
	var commission, closing float64

	cmd := &cobra.Command{
		Use:   "net-proceeds",
		Short: "Estimate what a seller takes home",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("commission") {
				in.CommissionRate = &commission
			}
			if cmd.Flags().Changed("closing") {
				in.ClosingCostsRate = &closing
			}
			out, err := calculator.NetProceeds(in)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}

	cmd.Flags().Float64Var(&in.SalePrice, "price", 0, "Expected sale price")
	cmd.Flags().Float64Var(&in.MortgageBalance, "payoff", 0, "Remaining mortgage balance")
	cmd.Flags().Float64Var(&commission, "commission", calculator.DefaultCommissionRate, "Commission, percent")
	cmd.Flags().Float64Var(&closing, "closing", calculator.DefaultClosingCostsRate, "Seller closing costs, percent")
	cmd.Flags().Float64Var(&in.RepairCredits, "credits", 0, "Repair credits to the buyer")
	cmd.Flags().Float64Var(&in.Liens, "liens", 0, "Liens to clear at closing")
	_ = cmd.MarkFlagRequired("price")

	return cmd
}

func newHomeValueCmd() *cobra.Command {
	var in models.HomeValueInput
	var upgrades []string

	cmd := &cobra.Command{
		Use:   "home-value",
		Short: "Value range and list strategy for a home",
		RunE: func(cmd *cobra.Command, args []string) error {
			if in.PricePerSqFt == 0 && in.Neighborhood != "" {
				if n, ok := neighborhoods.Lookup(in.Neighborhood); ok {
					in.PricePerSqFt = n.PricePerSqFt
				}
			}
			for _, u := range upgrades {
				switch u {
				case "kitchen":
					in.Upgrades.Kitchen = true
				case "bath":
					in.Upgrades.Bath = true
				case "flooring":
					in.Upgrades.Flooring = true
				case "hvac":
					in.Upgrades.HVAC = true
				case "roof":
					in.Upgrades.Roof = true
				default:
					return &calculator.ValidationError{Field: "upgrades", Message: "unknown upgrade " + u}
				}
			}
			out, err := calculator.EstimateValue(in)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}

	cmd.Flags().Float64Var(&in.SquareFeet, "sqft", 0, "Living area in square feet")
	cmd.Flags().StringVar(&in.Neighborhood, "neighborhood", "", "Neighborhood name, supplies price per sqft")
	cmd.Flags().Float64Var(&in.PricePerSqFt, "ppsf", 0, "Price per square foot, overrides the neighborhood")
	cmd.Flags().StringVar(&in.Condition, "condition", "", "excellent, good, fair or needs-work")
	cmd.Flags().StringSliceVar(&upgrades, "upgrades", nil, "Recent upgrades: kitchen,bath,flooring,hvac,roof")
	cmd.Flags().StringVar(&in.Timeline, "timeline", models.TimelineExploring, "asap, 1-3-months, 3-6-months or exploring")
	_ = cmd.MarkFlagRequired("sqft")

	return cmd
}

func newOfferCmd() *cobra.Command {
	var in models.OfferInput

	cmd := &cobra.Command{
		Use:   "offer",
		Short: "Score an offer against the list price",
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := calculator.ScoreOffer(in)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}

	cmd.Flags().Float64Var(&in.OfferPrice, "offer", 0, "Offer price")
	cmd.Flags().Float64Var(&in.ListPrice, "list", 0, "List price")
	cmd.Flags().Float64Var(&in.DownPaymentPercent, "down", 20, "Down payment, percent")
	cmd.Flags().StringVar(&in.FinancingType, "financing", models.FinancingConventional, "cash, conventional, va or fha")
	cmd.Flags().Float64Var(&in.AppraisalGap, "appraisal-gap", 0, "Appraisal gap coverage in dollars")
	cmd.Flags().IntVar(&in.ClosingDays, "closing-days", calculator.DefaultClosingDays, "Days to close")
	cmd.Flags().Float64Var(&in.Concessions, "concessions", 0, "Seller concessions requested in dollars")
	_ = cmd.MarkFlagRequired("offer")
	_ = cmd.MarkFlagRequired("list")

	return cmd
}
