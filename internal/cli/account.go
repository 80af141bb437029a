package cli

import (
	"context"
	"fmt"

	"github.com/alp-turan/sugarbyte/internal/domain"
)

type RegisterCmd struct {
	Name        string `required:"" help:"Full name."`
	Email       string `required:"" help:"Email address (unique)."`
	Password    string `required:"" help:"Password."`
	Phone       string `help:"Phone number."`
	Diabetes    string `help:"Diabetes type."`
	Insulin     string `help:"Insulin type."`
	Admin       string `help:"Insulin administration method."`
	DoctorName  string `help:"Doctor's name."`
	DoctorEmail string `help:"Doctor's email (alarm escalation target)."`
	Logbook     string `help:"Logbook style: Simple, Comprehensive or Intensive." default:"Simple"`
}

func (c *RegisterCmd) Run(ctx *Context) error {
	account := &domain.Account{
		Name:         c.Name,
		Email:        c.Email,
		Password:     c.Password,
		Phone:        c.Phone,
		DiabetesType: c.Diabetes,
		InsulinType:  c.Insulin,
		InsulinAdmin: c.Admin,
		DoctorName:   c.DoctorName,
		DoctorEmail:  c.DoctorEmail,
		LogbookType:  domain.LogbookType(c.Logbook),
	}

	created, err := ctx.Users.RegisterAccount(context.Background(), account)
	if err != nil {
		return err
	}

	fmt.Printf("Registered %s (id %d)\n", created.Email, created.ID)
	return nil
}

type LoginCmd struct {
	Email    string `required:"" help:"Email address."`
	Password string `required:"" help:"Password."`
}

func (c *LoginCmd) Run(ctx *Context) error {
	account, err := ctx.Users.Authenticate(context.Background(), c.Email, c.Password)
	if err != nil {
		return err
	}

	fmt.Printf("Welcome back, %s\n", account.Name)
	return nil
}

type ProfileCmd struct {
	Show   ProfileShowCmd   `cmd:"" help:"Show a profile."`
	Update ProfileUpdateCmd `cmd:"" help:"Update profile fields."`
}

type ProfileShowCmd struct {
	Email string `required:"" help:"Email of the account to show."`
}

func (c *ProfileShowCmd) Run(ctx *Context) error {
	account, err := ctx.Users.FindAccountByEmail(context.Background(), c.Email)
	if err != nil {
		return err
	}
	if account == nil {
		return fmt.Errorf("no account for %s", c.Email)
	}

	fmt.Printf("Name:            %s\n", account.Name)
	fmt.Printf("Email:           %s\n", account.Email)
	fmt.Printf("Phone:           %s\n", account.Phone)
	fmt.Printf("Diabetes type:   %s\n", account.DiabetesType)
	fmt.Printf("Insulin type:    %s\n", account.InsulinType)
	fmt.Printf("Insulin admin:   %s\n", account.InsulinAdmin)
	fmt.Printf("Logbook:         %s\n", account.LogbookType)
	fmt.Printf("Doctor:          %s <%s>\n", account.DoctorName, account.DoctorEmail)
	fmt.Printf("Doctor address:  %s\n", account.DoctorAddress)
	fmt.Printf("Emergency phone: %s\n", account.DoctorEmergencyPhone)
	return nil
}

type ProfileUpdateCmd struct {
	Email       string `required:"" help:"Email of the account to update."`
	Name        string `help:"New name."`
	Phone       string `help:"New phone number."`
	NewEmail    string `help:"New email address."`
	DoctorName  string `help:"New doctor name."`
	DoctorEmail string `help:"New doctor email."`
	Password    string `help:"New password (leave empty to keep current)."`
}

func (c *ProfileUpdateCmd) Run(ctx *Context) error {
	bg := context.Background()
	account, err := ctx.Users.FindAccountByEmail(bg, c.Email)
	if err != nil {
		return err
	}
	if account == nil {
		return fmt.Errorf("no account for %s", c.Email)
	}

	if c.Name != "" {
		account.Name = c.Name
	}
	if c.Phone != "" {
		account.Phone = c.Phone
	}
	if c.NewEmail != "" {
		account.Email = c.NewEmail
	}
	if c.DoctorName != "" {
		account.DoctorName = c.DoctorName
	}
	if c.DoctorEmail != "" {
		account.DoctorEmail = c.DoctorEmail
	}
	account.Password = c.Password

	if err := ctx.Users.UpdateAccount(bg, account); err != nil {
		return err
	}

	fmt.Println("Profile updated")
	return nil
}
