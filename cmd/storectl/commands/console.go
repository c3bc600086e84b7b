package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/storeops/storefront-console/internal/core/domain"
	"github.com/storeops/storefront-console/internal/core/ports"
	"github.com/storeops/storefront-console/internal/infrastructure/ops"
	"github.com/storeops/storefront-console/internal/nav"
)

// NewConsoleCommand starts the interactive session. Unlike the one-shot
// commands it keeps the cookie-backed session alive between operations, so
// the full redirect-and-resume flow is observable: open a protected path
// while anonymous, get sent to login, and land on the requested destination
// after authenticating.
func NewConsoleCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "console",
		Short: "Interactive storefront console",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			return runConsole(cmd.Context(), a)
		},
	}
}

func runConsole(ctx context.Context, a *app) error {
	if a.cfg.Ops.Enabled {
		srv := ops.NewServer(a.client, a.log)
		srv.Start(a.cfg.Ops.Addr)
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
	}

	navigate(ctx, a, a.router.DefaultPath())

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print(prompt(a))
		if !scanner.Scan() {
			fmt.Println()
			return scanner.Err()
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if fields[0] == "exit" || fields[0] == "quit" {
			return nil
		}

		if err := dispatch(ctx, a, fields[0], fields[1:]); err != nil {
			fmt.Println(domain.DisplayMessage(err))
		}
	}
}

func prompt(a *app) string {
	sess := a.sessions.Current()
	if !sess.Authenticated() {
		return "storectl> "
	}
	return fmt.Sprintf("storectl (%s)> ", sess.Identity.Email)
}

func dispatch(ctx context.Context, a *app, verb string, args []string) error {
	switch verb {
	case "help":
		printConsoleHelp()
		return nil

	case "open":
		if len(args) != 1 {
			return fmt.Errorf("usage: open <path>")
		}
		navigate(ctx, a, args[0])
		return nil

	case "login":
		if len(args) != 2 {
			return fmt.Errorf("usage: login <email> <password>")
		}
		creds := ports.Credentials{Username: args[0], Password: args[1]}
		if err := a.auth.Login(ctx, creds); err != nil {
			return err
		}
		// Pick up the destination the gate recorded before the redirect.
		if out, ok := a.router.Resume(ctx); ok {
			report(a, out)
		}
		return nil

	case "logout":
		return a.auth.Logout(ctx)

	case "whoami":
		sess := a.sessions.Current()
		if !sess.Authenticated() {
			fmt.Println("anonymous")
			return nil
		}
		a.renderUser(sess.Identity)
		return nil

	case "users":
		navigate(ctx, a, "/users")
		return nil

	case "user":
		return consoleDetail(args, func(id int64) error {
			if err := a.users.FetchOne(ctx, id); err != nil {
				return err
			}
			if detail, _ := a.users.Detail(); detail != nil {
				a.renderUser(detail)
			}
			return nil
		})

	case "products":
		navigate(ctx, a, "/products")
		return nil

	case "product":
		return consoleDetail(args, func(id int64) error {
			if err := a.products.FetchOne(ctx, id); err != nil {
				return err
			}
			if detail, _ := a.products.Detail(); detail != nil {
				a.renderProduct(detail)
			}
			return nil
		})

	default:
		return fmt.Errorf("unknown command %q, type 'help'", verb)
	}
}

func consoleDetail(args []string, fetch func(id int64) error) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: <command> <id>")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return err
	}
	return fetch(id)
}

func navigate(ctx context.Context, a *app, path string) {
	report(a, a.router.Navigate(ctx, path))
}

func report(a *app, out nav.Outcome) {
	switch out.Kind {
	case nav.Forbidden:
		fmt.Printf("access to %s is forbidden, try 'open %s'\n", out.Path, a.router.DefaultPath())
	case nav.RedirectedToLogin:
		fmt.Printf("login required, you will be taken to %s afterwards\n", out.ResumeTo)
	default:
		if out.Err != nil {
			fmt.Println(domain.DisplayMessage(out.Err))
		}
	}
}

func printConsoleHelp() {
	fmt.Print(`commands:
  open <path>             navigate to a destination (/home, /login, /users, /products)
  login <email> <pass>    authenticate and resume the pending destination
  logout                  end the session
  whoami                  show the current identity
  users                   list accounts (admin)
  user <id>               show one account (admin)
  products                list products
  product <id>            show one product
  help                    show this help
  exit                    leave the console
`)
}
