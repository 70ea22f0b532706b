package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rcalder/runway/internal/config"
	"github.com/rcalder/runway/internal/fcapi"
	"github.com/rcalder/runway/internal/forecast"
)

// gateway is the slice of the forecasting API the TUI depends on.
// *fcapi.Client satisfies it; tests substitute a scripted fake.
type gateway interface {
	ListUsers(ctx context.Context) ([]fcapi.User, error)
	CreateUser(ctx context.Context, email, password string) (*fcapi.User, error)
	ListAccounts(ctx context.Context, userID int) ([]fcapi.Account, error)
	CreateAccount(ctx context.Context, userID int, name string, currentBalance float64) (*fcapi.Account, error)
	GetForecast(ctx context.Context, accountID, months int, buffer float64) (*fcapi.Forecast, error)
	SubmitOverride(ctx context.Context, req fcapi.OverrideRequest) (*fcapi.OverrideAck, error)
}

// Identity used when the backend has no user or account yet. Creation runs
// at most once per program run.
const (
	defaultUserEmail    = "user@example.com"
	defaultUserPassword = "yourpassword"
	defaultAccountName  = "Default Account"
)

const requestTimeout = 30 * time.Second

// User-visible failure strings. Raw errors go to the debug log only.
const (
	usersFailureText    = "Unable to load users. Please check your API connection."
	accountsFailureText = "Unable to load accounts. Please check your API connection."
	forecastFailureText = "Unable to load forecast. Please check your API connection."
	overrideFailureText = "Failed to submit override. Please check your API connection."
)

type phase int

const (
	phaseBootstrapping phase = iota
	phaseBootstrapFailed
	phaseLoading
	phaseReady
	phaseForecastFailed
)

const (
	viewModeList = iota
	viewModeCalendar
	viewModeGraph
)

const viewModeCount = 3

const (
	overrideFocusType = iota
	overrideFocusID
	overrideFocusDate
	overrideFocusAmount
	overrideFocusSkip
	overrideFocusSubmit
)

type usersResolvedMsg struct {
	user fcapi.User
	err  error
}

type accountsResolvedMsg struct {
	accounts []fcapi.Account
	err      error
}

type forecastLoadedMsg struct {
	session int
	series  []forecast.BalancePoint
	alerts  []fcapi.Alert
	events  []fcapi.Event
	err     error
}

type overrideSubmittedMsg struct {
	accountID int
	err       error
}

type model struct {
	gw  gateway
	cfg config.Config

	width  int
	height int

	phase        phase
	bootstrapErr string
	bootstrapped bool

	user     fcapi.User
	accounts []fcapi.Account
	selected int

	forecastSession int
	series          []forecast.BalancePoint
	alerts          []fcapi.Alert
	events          []fcapi.Event
	forecastErr     string

	viewMode int

	overrideOpen   bool
	overrideFocus  int
	overrideType   string
	overrideSkip   bool
	overrideID     textinput.Model
	overrideDate   textinput.Model
	overrideAmount textinput.Model
	overrideErr    string
	submitting     bool

	feedback string

	quitting bool
}

// New builds the TUI model around a gateway client and loaded config.
func New(gw gateway, cfg config.Config) tea.Model {
	idInput := textinput.New()
	idInput.Prompt = ""
	idInput.Placeholder = "event id"
	idInput.CharLimit = 12
	idInput.Width = 16

	dateInput := textinput.New()
	dateInput.Prompt = ""
	dateInput.Placeholder = "YYYY-MM-DD"
	dateInput.CharLimit = 10
	dateInput.Width = 16

	amountInput := textinput.New()
	amountInput.Prompt = ""
	amountInput.Placeholder = "optional"
	amountInput.CharLimit = 16
	amountInput.Width = 16

	return model{
		gw:             gw,
		cfg:            cfg,
		phase:          phaseBootstrapping,
		viewMode:       viewModeList,
		overrideType:   fcapi.EventTypeBill,
		overrideID:     idInput,
		overrideDate:   dateInput,
		overrideAmount: amountInput,
	}
}

func (m model) Init() tea.Cmd {
	if m.bootstrapped {
		return nil
	}
	return m.resolveUserCmd()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case usersResolvedMsg:
		if msg.err != nil {
			m.phase = phaseBootstrapFailed
			m.bootstrapErr = usersFailureText
			return m, nil
		}
		m.user = msg.user
		return m, m.resolveAccountsCmd(m.user.ID)

	case accountsResolvedMsg:
		if msg.err != nil {
			m.phase = phaseBootstrapFailed
			m.bootstrapErr = accountsFailureText
			return m, nil
		}
		m.accounts = msg.accounts
		m.selected = 0
		m.bootstrapped = true
		return m.startForecastLoad()

	case forecastLoadedMsg:
		if msg.session != m.forecastSession {
			// Response for a superseded selection. Drop it.
			return m, nil
		}
		if msg.err != nil {
			m.phase = phaseForecastFailed
			m.series = nil
			m.alerts = nil
			m.events = nil
			m.forecastErr = forecastFailureText
			return m, nil
		}
		m.phase = phaseReady
		m.series = msg.series
		m.alerts = msg.alerts
		m.events = msg.events
		m.forecastErr = ""
		return m, nil

	case overrideSubmittedMsg:
		m.submitting = false
		if msg.err != nil {
			m.overrideErr = overrideFailureText
			return m, nil
		}
		m.overrideOpen = false
		m.overrideErr = ""
		m.feedback = "Override submitted!"
		m.resetOverrideForm()
		if account, ok := m.selectedAccount(); ok && account.ID == msg.accountID {
			return m.startForecastLoad()
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.overrideOpen {
		return m.handleOverrideKey(msg)
	}

	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit

	case "v", "tab":
		// View modes render the same series; switching never refetches.
		if m.bootstrapped {
			m.viewMode = (m.viewMode + 1) % viewModeCount
		}
		return m, nil

	case "left", "h", "[":
		return m.selectAccount(m.selected - 1)

	case "right", "l", "]":
		return m.selectAccount(m.selected + 1)

	case "r":
		if m.bootstrapped && m.phase != phaseLoading {
			return m.startForecastLoad()
		}
		return m, nil

	case "o":
		if m.bootstrapped && m.phase != phaseLoading {
			m.overrideOpen = true
			m.overrideErr = ""
			m.feedback = ""
			m.overrideFocus = overrideFocusType
			return m, nil
		}
		return m, nil
	}

	return m, nil
}

func (m model) selectAccount(index int) (tea.Model, tea.Cmd) {
	if !m.bootstrapped || len(m.accounts) == 0 {
		return m, nil
	}
	if index < 0 || index >= len(m.accounts) || index == m.selected {
		return m, nil
	}
	m.selected = index
	m.feedback = ""
	return m.startForecastLoad()
}

// startForecastLoad begins a fresh load for the current selection. The
// bumped session number is the tag that lets stale responses be discarded.
func (m model) startForecastLoad() (tea.Model, tea.Cmd) {
	account, ok := m.selectedAccount()
	if !ok {
		return m, nil
	}
	m.forecastSession++
	m.phase = phaseLoading
	m.series = nil
	m.alerts = nil
	m.events = nil
	m.forecastErr = ""
	return m, m.loadForecastCmd(m.forecastSession, account.ID)
}

func (m model) selectedAccount() (fcapi.Account, bool) {
	if m.selected < 0 || m.selected >= len(m.accounts) {
		return fcapi.Account{}, false
	}
	return m.accounts[m.selected], true
}

func (m model) resolveUserCmd() tea.Cmd {
	gw := m.gw
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		users, err := gw.ListUsers(ctx)
		if err != nil {
			return usersResolvedMsg{err: err}
		}
		if len(users) > 0 {
			return usersResolvedMsg{user: users[0]}
		}

		created, err := gw.CreateUser(ctx, defaultUserEmail, defaultUserPassword)
		if err != nil {
			return usersResolvedMsg{err: err}
		}
		return usersResolvedMsg{user: *created}
	}
}

func (m model) resolveAccountsCmd(userID int) tea.Cmd {
	gw := m.gw
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		accounts, err := gw.ListAccounts(ctx, userID)
		if err != nil {
			return accountsResolvedMsg{err: err}
		}
		if len(accounts) > 0 {
			return accountsResolvedMsg{accounts: accounts}
		}

		created, err := gw.CreateAccount(ctx, userID, defaultAccountName, 0)
		if err != nil {
			return accountsResolvedMsg{err: err}
		}
		return accountsResolvedMsg{accounts: []fcapi.Account{*created}}
	}
}

func (m model) loadForecastCmd(session, accountID int) tea.Cmd {
	gw := m.gw
	months := m.cfg.Forecast.Months
	buffer := m.cfg.Forecast.Buffer
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		fc, err := gw.GetForecast(ctx, accountID, months, buffer)
		if err != nil {
			return forecastLoadedMsg{session: session, err: err}
		}
		return forecastLoadedMsg{
			session: session,
			series:  forecast.Normalize(fc.Balances),
			alerts:  fc.Alerts,
			events:  fc.Events,
		}
	}
}

func (m model) submitOverrideCmd(req fcapi.OverrideRequest) tea.Cmd {
	gw := m.gw
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		if _, err := gw.SubmitOverride(ctx, req); err != nil {
			return overrideSubmittedMsg{accountID: req.AccountID, err: err}
		}
		return overrideSubmittedMsg{accountID: req.AccountID}
	}
}
