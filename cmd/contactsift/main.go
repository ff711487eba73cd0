package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/contactsift/contactsift"
	"github.com/contactsift/contactsift/goquery"
	sifthttp "github.com/contactsift/contactsift/http"
	"github.com/contactsift/contactsift/scan"
	siftslog "github.com/contactsift/contactsift/slog"
	"github.com/contactsift/contactsift/sqlite"
	"github.com/contactsift/contactsift/trafilatura"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Service for end-to-end testing.
	ContactService contactsift.ContactService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("contactsift"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'contactsift --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set CONTACTSIFT_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	// Wire core services into dependencies
	m.ContactService = sqlite.NewContactService(m.DB)
	deps.DB = m.DB
	deps.Contacts = m.ContactService
	deps.Sitemaps = sifthttp.NewSitemapService(nil)

	// Wire scan dependencies only when fetching will happen
	if cmd == "scan" && !cli.Scan.Preview {
		fetcher := sifthttp.NewFetcher()
		defer fetcher.Close()

		var (
			scanFetcher  contactsift.Fetcher        = fetcher
			scanSitemaps contactsift.SitemapService = deps.Sitemaps
			scanContacts contactsift.ContactService = m.ContactService
		)
		if cli.Scan.Verbose {
			logger := slog.New(slog.NewTextHandler(stderr, nil))
			scanFetcher = siftslog.NewLoggingFetcher(scanFetcher, logger)
			scanSitemaps = siftslog.NewLoggingSitemapService(scanSitemaps, logger)
			scanContacts = siftslog.NewLoggingContactService(scanContacts, logger)
		}

		deps.Scanner = &scan.Scanner{
			Sitemaps:    scanSitemaps,
			Fetcher:     scanFetcher,
			Texts:       trafilatura.NewExtractor(),
			Engine:      contactsift.NewEngine(goquery.NewSource()),
			Pages:       sqlite.NewPageLedger(m.DB),
			Contacts:    scanContacts,
			RateLimiter: scan.NewDomainLimiter(cli.Scan.Rate),
			Prioritize:  sifthttp.PrioritizeContactPages,
			Concurrency: cli.Scan.Concurrency,
			MaxPages:    cli.Scan.MaxPages,
		}
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("CONTACTSIFT_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "contactsift.db"
	}
	dir := filepath.Join(home, ".contactsift")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "contactsift.db")
}
