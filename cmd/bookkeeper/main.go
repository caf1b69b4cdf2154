package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"golang.org/x/term"

	"github.com/yxchen/bookkeeper/internal/config"
	"github.com/yxchen/bookkeeper/internal/domain"
	"github.com/yxchen/bookkeeper/internal/repository/jsonfile"
	"github.com/yxchen/bookkeeper/internal/service"
	"github.com/yxchen/bookkeeper/internal/util"
)

func main() {
	// Initialize zerolog
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if os.Getenv("ENV") != "production" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	cfg := config.Load()

	store, err := jsonfile.New(cfg.DataDir)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open storage")
	}

	engine := service.NewAccountService(store)
	if err := engine.Initialize(); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize engine")
	}

	s := &session{engine: engine, in: bufio.NewScanner(os.Stdin)}
	s.run()

	if err := engine.SaveAll(); err != nil {
		log.Error().Err(err).Msg("Failed to save on exit")
		os.Exit(1)
	}
}

// session is the terminal menu loop. It only renders facade results; no
// business rules live here.
type session struct {
	engine *service.AccountService
	in     *bufio.Scanner
	user   *domain.User
}

func (s *session) run() {
	for {
		if s.user == nil {
			fmt.Println("\n[1] register  [2] login  [q] quit")
			switch s.prompt("> ") {
			case "1":
				s.register()
			case "2":
				s.login()
			case "q":
				return
			}
			continue
		}

		fmt.Printf("\n%s: [1] bills  [2] add bill  [3] delete bill  [4] categories  [5] add category  [6] budget  [7] report  [8] day summary  [9] logout  [q] quit\n", s.user.Username)
		switch s.prompt("> ") {
		case "1":
			s.listBills()
		case "2":
			s.addBill()
		case "3":
			s.deleteBill()
		case "4":
			s.listCategories()
		case "5":
			s.addCategory()
		case "6":
			s.budget()
		case "7":
			s.report()
		case "8":
			s.daySummary()
		case "9":
			s.user = nil
		case "q":
			return
		}
	}
}

func (s *session) register() {
	username := s.prompt("username: ")
	password := s.promptPassword()
	if _, err := s.engine.RegisterUser(username, password); err != nil {
		fmt.Println("registration failed:", err)
		return
	}
	fmt.Println("registered; you can log in now")
}

func (s *session) login() {
	username := s.prompt("username: ")
	password := s.promptPassword()
	user, err := s.engine.Login(username, password)
	if err != nil {
		fmt.Println("login failed:", err)
		return
	}
	s.user = user
}

func (s *session) listBills() {
	page, _ := strconv.Atoi(s.prompt("page (1-based): "))
	result := s.engine.GetBillsPaged(s.user.ID, page, domain.DefaultPageSize)
	for _, b := range result.Items {
		name := "-"
		if c := categoryName(s.engine.GetCategories(s.user.ID), b.CategoryID); c != "" {
			name = c
		}
		fmt.Printf("  #%d  %s  %s  %s  %s\n", b.ID, b.Amount.StringFixed(2), name, util.FormatDate(b.Time), b.Note)
	}
	fmt.Printf("page %d/%d (%d bills)\n", result.PageNumber, result.TotalPages, result.TotalCount)
}

func (s *session) addBill() {
	amount, err := decimal.NewFromString(s.prompt("amount: "))
	if err != nil {
		fmt.Println("bad amount")
		return
	}
	categoryID, _ := strconv.Atoi(s.prompt("category id (0 for none): "))
	note := s.prompt("note: ")

	bill := domain.Bill{Amount: amount, CategoryID: categoryID, Time: time.Now(), Note: note}
	if impact := s.engine.GetBudgetImpactIfAddBill(s.user.ID, bill); impact.HasBudgetRisk() {
		fmt.Println("warning:", impact.WarningMessage)
	}
	if _, err := s.engine.AddBill(s.user.ID, bill); err != nil {
		fmt.Println("add failed:", err)
		return
	}
	fmt.Println("added")
}

func (s *session) deleteBill() {
	id, _ := strconv.Atoi(s.prompt("bill id: "))
	if err := s.engine.DeleteBill(s.user.ID, id); err != nil {
		fmt.Println("delete failed:", err)
	}
}

func (s *session) listCategories() {
	for _, c := range s.engine.GetCategories(s.user.ID) {
		fmt.Printf("  #%d  %s (%s)\n", c.ID, c.Name, c.Type)
	}
}

func (s *session) addCategory() {
	category := domain.Category{
		Name: s.prompt("name: "),
		Type: s.prompt("type (income/expense): "),
	}
	if _, err := s.engine.AddCategory(s.user.ID, category); err != nil {
		fmt.Println("add failed:", err)
	}
}

func (s *session) budget() {
	status := s.engine.GetBudgetStatus(s.user.ID)
	if status.BudgetSet {
		fmt.Printf("total %s, used %s, remaining %s (%.0f%%)\n",
			status.TotalBudget.StringFixed(2), status.UsedAmount.StringFixed(2),
			status.Remaining.StringFixed(2), status.UsagePercentage*100)
		for _, cs := range s.engine.GetCategoryBudgetStatus(s.user.ID) {
			fmt.Printf("  %s: limit %s, used %s\n", cs.CategoryName, cs.Limit.StringFixed(2), cs.Used.StringFixed(2))
		}
	} else {
		fmt.Println("no budget set")
	}

	raw := s.prompt("new total limit (blank to keep): ")
	if raw == "" {
		return
	}
	limit, err := decimal.NewFromString(raw)
	if err != nil {
		fmt.Println("bad limit")
		return
	}
	if err := s.engine.SetBudget(s.user.ID, domain.Budget{TotalLimit: limit}); err != nil {
		fmt.Println("set failed:", err)
	}
}

func (s *session) report() {
	report := s.engine.GenerateReport(s.user.ID, domain.QueryCriteria{}, domain.PeriodMonthly, domain.ChartTypeBar)
	for name, sum := range report.CategorySummary {
		fmt.Printf("  %s: %s\n", name, sum.StringFixed(2))
	}
	fmt.Printf("income %s, expense %s\n", report.TotalIncome.StringFixed(2), report.TotalExpense.StringFixed(2))
}

func (s *session) daySummary() {
	date := s.prompt("date (YYYY-MM-DD): ")
	summary := s.engine.GetDailySummary(s.user.ID, date)
	fmt.Printf("%s: %d bills, income %s, expense %s\n",
		summary.Date, summary.BillCount, summary.TotalIncome.StringFixed(2), summary.TotalExpense.StringFixed(2))
}

func (s *session) prompt(label string) string {
	fmt.Print(label)
	if !s.in.Scan() {
		return "q"
	}
	return strings.TrimSpace(s.in.Text())
}

func (s *session) promptPassword() string {
	fmt.Print("password: ")
	if term.IsTerminal(int(os.Stdin.Fd())) {
		raw, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Println()
		if err != nil {
			return ""
		}
		return string(raw)
	}
	// Fallback for pipes and tests
	if !s.in.Scan() {
		return ""
	}
	return strings.TrimSpace(s.in.Text())
}

func categoryName(categories []domain.Category, id int) string {
	for _, c := range categories {
		if c.ID == id {
			return c.Name
		}
	}
	return ""
}
