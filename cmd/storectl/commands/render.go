package commands

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/storeops/storefront-console/internal/core/domain"
)

func (a *app) renderUsers(ctx context.Context) error {
	if err := a.users.FetchAll(ctx); err != nil {
		return err
	}
	users := a.users.Items()

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tEMAIL\tROLES\tENABLED")
	for _, u := range users {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%t\n",
			u.ID, u.FullName(), u.Email, strings.Join(u.Roles, ","), u.Enabled)
	}
	return w.Flush()
}

func (a *app) renderUser(u *domain.User) {
	fmt.Printf("id:         %d\n", u.ID)
	fmt.Printf("name:       %s\n", u.FullName())
	fmt.Printf("email:      %s\n", u.Email)
	fmt.Printf("gender:     %s\n", u.Gender)
	fmt.Printf("birth date: %s\n", u.BirthDate)
	fmt.Printf("enabled:    %t\n", u.Enabled)
	fmt.Printf("roles:      %s\n", strings.Join(u.Roles, ", "))
}

func (a *app) renderProducts(ctx context.Context) error {
	if err := a.products.FetchAll(ctx); err != nil {
		return err
	}
	products := a.products.Items()

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tPRICE\tQTY\tAVAILABLE")
	for _, p := range products {
		fmt.Fprintf(w, "%d\t%s\t%.2f\t%d\t%t\n", p.ID, p.Name, p.Price, p.Quantity, p.Available)
	}
	return w.Flush()
}

func (a *app) renderProduct(p *domain.Product) {
	fmt.Printf("id:          %d\n", p.ID)
	fmt.Printf("name:        %s\n", p.Name)
	fmt.Printf("summary:     %s\n", p.ShortDescription)
	fmt.Printf("description: %s\n", p.Description)
	fmt.Printf("price:       %.2f\n", p.Price)
	fmt.Printf("quantity:    %d\n", p.Quantity)
	fmt.Printf("available:   %t\n", p.Available)
	if p.Image != nil {
		fmt.Printf("image:       %s (%s, %d bytes)\n", p.Image.Filename, p.Image.ContentType, len(p.Image.Data))
	}
}
