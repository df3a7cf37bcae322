package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/yashwalhekar/adminpanelfrontend/internal/config"
	"github.com/yashwalhekar/adminpanelfrontend/internal/domain"
	"github.com/yashwalhekar/adminpanelfrontend/internal/notify"
	"github.com/yashwalhekar/adminpanelfrontend/internal/repositories"
	"github.com/yashwalhekar/adminpanelfrontend/internal/session"
	"github.com/yashwalhekar/adminpanelfrontend/pkg/logger"
)

const usage = `usage: console [-config file] <command> [args]

commands:
  login -email <email> -password <password>
  logout
  <screen> list [-page N]
  <screen> create field=value ... [-image path]
  <screen> edit <id> field=value ...
  <screen> toggle <id>
  <screen> delete <id>

screens: ads, taglines, testimonials, blogs, viewers, freebies
`

// App holds the console's wired dependencies.
type App struct {
	config   *config.Config
	logger   *zap.Logger
	session  *session.Session
	client   *repositories.Client
	notifier notify.Notifier
}

func newApp(configPath string) (*App, error) {
	// Best-effort .env load for local development.
	_ = godotenv.Load(".env")

	if err := config.Load(configPath); err != nil {
		if configPath != "" {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		if err := config.Load(""); err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
	}
	cfg := config.Get()

	if err := logger.Init(cfg.Log.Level, cfg.Log.Development); err != nil {
		return nil, fmt.Errorf("initializing logger: %w", err)
	}
	log := logger.Get()

	tokenPath := cfg.Auth.TokenFile
	if !filepath.IsAbs(tokenPath) {
		if home, err := os.UserHomeDir(); err == nil {
			tokenPath = filepath.Join(home, tokenPath)
		}
	}

	sess := session.New(session.NewFileTokenStore(tokenPath), log)
	client := repositories.NewClient(
		cfg.API.BaseURL,
		time.Duration(cfg.API.TimeoutSeconds)*time.Second,
		sess,
		log,
	)

	return &App{
		config:   cfg,
		logger:   log,
		session:  sess,
		client:   client,
		notifier: notify.NewWriterNotifier(os.Stdout),
	}, nil
}

// screenFor builds the runner for a screen name.
func (a *App) screenFor(name string) (screen, error) {
	pages := a.config.Pages
	switch name {
	case "ads":
		return newScreenRunner(domain.Ads(), a.client, pages.Ads, a.notifier, a.logger, os.Stdout), nil
	case "taglines":
		return newScreenRunner(domain.Taglines(), a.client, pages.Taglines, a.notifier, a.logger, os.Stdout), nil
	case "testimonials":
		return newScreenRunner(domain.Testimonials(), a.client, pages.Testimonials, a.notifier, a.logger, os.Stdout), nil
	case "blogs":
		return newScreenRunner(domain.Blogs(), a.client, pages.Blogs, a.notifier, a.logger, os.Stdout), nil
	case "viewers":
		return newScreenRunner(domain.Viewers(), a.client, pages.Viewers, a.notifier, a.logger, os.Stdout), nil
	case "freebies":
		return newScreenRunner(domain.Freebies(), a.client, pages.Freebies, a.notifier, a.logger, os.Stdout), nil
	default:
		return nil, fmt.Errorf("unknown screen %q", name)
	}
}

func (a *App) login(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	email := fs.String("email", "", "operator email")
	password := fs.String("password", "", "operator password")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *email == "" || *password == "" {
		return fmt.Errorf("login requires -email and -password")
	}

	result, err := a.client.Login(ctx, *email, *password)
	if err != nil {
		return err
	}
	fmt.Printf("logged in as %s\n", result.User.Email)
	return nil
}

func (a *App) logout() {
	a.session.Clear()
	fmt.Println("logged out")
}

// runScreenCommand gates the screen behind the session expiry check and
// then dispatches the verb. The gate runs before any network call.
func (a *App) runScreenCommand(ctx context.Context, screenName string, args []string) error {
	if err := a.session.Guard(time.Now()); err != nil {
		return err
	}

	scr, err := a.screenFor(screenName)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("missing action for screen %q", screenName)
	}

	verb, rest := args[0], args[1:]
	switch verb {
	case "list":
		fs := flag.NewFlagSet("list", flag.ContinueOnError)
		page := fs.Int("page", 0, "page number to show")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		return scr.list(ctx, *page)

	case "create":
		fs := flag.NewFlagSet("create", flag.ContinueOnError)
		image := fs.String("image", "", "path of an image to upload")
		sets, flagArgs := splitAssignments(rest)
		if err := fs.Parse(flagArgs); err != nil {
			return err
		}
		return scr.create(ctx, sets, *image)

	case "edit":
		if len(rest) == 0 {
			return fmt.Errorf("edit requires an id")
		}
		sets, extra := splitAssignments(rest[1:])
		if len(extra) > 0 {
			return fmt.Errorf("unexpected arguments: %v", extra)
		}
		if len(sets) == 0 {
			return fmt.Errorf("edit requires at least one field=value pair")
		}
		return scr.edit(ctx, rest[0], sets)

	case "toggle":
		if len(rest) != 1 {
			return fmt.Errorf("toggle requires exactly one id")
		}
		return scr.toggle(ctx, rest[0])

	case "delete":
		if len(rest) != 1 {
			return fmt.Errorf("delete requires exactly one id")
		}
		return scr.remove(ctx, rest[0])

	default:
		return fmt.Errorf("unknown action %q", verb)
	}
}

// splitAssignments separates field=value pairs from remaining arguments.
func splitAssignments(args []string) (map[string]string, []string) {
	sets := make(map[string]string)
	var rest []string
	for _, arg := range args {
		if name, value, ok := strings.Cut(arg, "="); ok && !strings.HasPrefix(arg, "-") {
			sets[name] = value
			continue
		}
		rest = append(rest, arg)
	}
	return sets, rest
}

func main() {
	configPath := flag.String("config", os.Getenv("APP_CONFIG_PATH"), "path to config file")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	app, err := newApp(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx := context.Background()

	switch args[0] {
	case "login":
		err = app.login(ctx, args[1:])
	case "logout":
		app.logout()
	case "help":
		flag.Usage()
	default:
		err = app.runScreenCommand(ctx, args[0], args[1:])
	}

	if err != nil {
		if errors.Is(err, domain.ErrAuthExpired) {
			fmt.Fprintln(os.Stderr, "session expired, please run 'console login'")
		} else {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}
