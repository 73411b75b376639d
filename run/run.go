package run

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/xhd2015/go-dom-tui/charm"
	"github.com/xhd2015/less-gen/flags"
	"github.com/xhd2015/shabda/app"
	"github.com/xhd2015/shabda/data"
	"github.com/xhd2015/shabda/internal/config"
	"github.com/xhd2015/shabda/internal/process"
	"github.com/xhd2015/shabda/log"
	"github.com/xhd2015/shabda/models"
)

const help = `
shabda - random Sanskrit words from the Apte dictionary

Usage: shabda [OPTIONS]
       shabda <cmd> [OPTIONS]

Available sub commands:
  random                           print random words
  stats                            print dictionary statistics
  search <query>                   print words containing query
  import <dictionary.json>         load a dictionary into the sqlite source
  config                           show or update saved defaults

Options:
  --source <type>                  word source: server (default), file or sqlite
  --server-addr <addr>             server address (default http://localhost:5000)
  --dict-file <file>               dictionary JSON file for --source=file
  --db <file>                      sqlite database for --source=sqlite
  --count <n>                      words per generation, 1-100 (default 5)
  --debug-log <file>               enable debug logging to specified file
  --show-path                      print the config dir and exit
  -h,--help                        show this help message

Environment:
  SHABDA_SOURCE, SHABDA_SERVER_ADDR, SHABDA_DICT_FILE, also read from .env

Examples:
  shabda                                            run against http://localhost:5000
  shabda --source=file --dict-file dict.json        run offline from the parsed dictionary
  shabda import dict.json && shabda --source=sqlite  run offline from sqlite
  shabda random --count 3                           print 3 words
`

func Main(args []string) error {
	if len(args) > 0 {
		arg0 := args[0]
		switch arg0 {
		case "random":
			return handleRandom(args[1:])
		case "stats":
			return handleStats(args[1:])
		case "search":
			return handleSearch(args[1:])
		case "import":
			return handleImport(args[1:])
		case "config":
			return handleConfig(args[1:])
		}
	}

	var debugLogFile string
	var flagConfig SourceConfig
	var showPath bool
	var count int64

	args, err := flags.String("--source", &flagConfig.Source).
		String("--server-addr", &flagConfig.ServerAddr).
		String("--dict-file", &flagConfig.DictFile).
		String("--db", &flagConfig.DBFile).
		Int("--count", &count).
		String("--debug-log", &debugLogFile).
		Bool("--show-path", &showPath).
		Help("-h,--help", help).
		Parse(args)
	if err != nil {
		return err
	}

	if len(args) > 0 {
		return fmt.Errorf("unrecognized extra arguments: %s", strings.Join(args, " "))
	}

	flagConfig.DefaultCount = int(count)
	cfg, err := ApplyConfigDefaults(flagConfig)
	if err != nil {
		return err
	}
	if err := data.ValidateCount(cfg.DefaultCount); err != nil {
		return fmt.Errorf("invalid --count %d: %w", cfg.DefaultCount, err)
	}

	confDir, err := config.GetConfigDir()
	if err != nil {
		return err
	}

	if showPath {
		fmt.Println(confDir)
		return nil
	}

	err = os.MkdirAll(confDir, 0755)
	if err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}

	closers, err := log.Init(confDir)
	if err != nil {
		return err
	}
	defer func() {
		for _, c := range closers {
			c.Close()
		}
	}()

	if debugLogFile != "" {
		file, err := os.OpenFile(debugLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("failed to open debug log file: %w", err)
		}
		defer file.Close()
		log.SetInfoOutput(file)
	}

	releasePID, err := acquireRunningPID()
	if err != nil {
		return err
	}
	defer releasePID()

	wordService, closeService, err := createWordService(cfg)
	if err != nil {
		return err
	}
	defer closeService()

	ctx := context.Background()
	log.Infof(ctx, "start source=%s", describeSource(cfg))

	var p *tea.Program
	appState := app.State{
		CountInput: models.InputState{
			Focused: true,
		},
		Refresh: func() {
			p.Send(cursor.Blink())
		},
		StatusBar: app.StatusBar{
			Source: describeSource(cfg),
		},
	}
	appState.CountInput.SetValue(strconv.Itoa(cfg.DefaultCount))

	controller := app.NewController(&appState, data.NewWordManager(wordService))
	controller.Spawn = func(fn func()) {
		go fn()
	}
	controller.Post = func(fn func()) {
		p.Send(applyMsg{fn: fn})
	}

	model := &Model{
		app:   charm.NewCharmApp(&appState, app.App),
		state: &appState,
		onInit: func() {
			controller.Init(ctx)
		},
	}
	appState.Quit = func() {
		model.quit = true
	}

	p = tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

// acquireRunningPID refuses to start while another instance runs, and
// records the current PID until the returned func is called.
func acquireRunningPID() (func(), error) {
	conf, err := data.LoadConfig()
	if err != nil {
		return nil, err
	}

	self := os.Getpid()
	if conf != nil && conf.RunningPID > 0 {
		running, _ := process.IsRunning(conf.RunningPID, self)
		if running {
			return nil, fmt.Errorf("shabda is already running with PID %d", conf.RunningPID)
		}
	}
	if conf == nil {
		conf = &models.Config{}
	}
	conf.RunningPID = self
	err = data.SaveConfig(conf)
	if err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	return func() {
		conf, err := data.LoadConfig()
		if err != nil || conf == nil || conf.RunningPID != self {
			return
		}
		conf.RunningPID = 0
		data.SaveConfig(conf)
	}, nil
}

// applyMsg carries the outcome of background work onto the UI loop
type applyMsg struct {
	fn func()
}

type spinnerTickMsg struct{}

type Model struct {
	quit    bool
	ticking bool
	app     *charm.CharmApp[app.State]
	state   *app.State
	onInit  func()
}

func (m *Model) Init() tea.Cmd {
	if m.onInit != nil {
		m.onInit()
	}
	return m.tick()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case applyMsg:
		msg.fn()
	case spinnerTickMsg:
		m.ticking = false
	default:
		m.app.Update(msg)
	}
	if m.quit {
		return m, tea.Quit
	}
	return m, m.tick()
}

// tick keeps the spinner moving while a request is in flight
func (m *Model) tick() tea.Cmd {
	if !m.state.Loading || m.ticking {
		return nil
	}
	m.ticking = true
	return tea.Tick(spinner.MiniDot.FPS, func(time.Time) tea.Msg {
		return spinnerTickMsg{}
	})
}

func (m *Model) View() string {
	return m.app.Render()
}
