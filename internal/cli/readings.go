package cli

import (
	"context"
	"fmt"

	"github.com/alp-turan/sugarbyte/internal/domain"
)

type LogCmd struct {
	Email      string  `required:"" help:"Account email."`
	Date       string  `help:"Date (yyyy-MM-dd or 'today')." default:"today"`
	Slot       string  `required:"" help:"Time slot, e.g. 'Breakfast Pre' or 'Bedtime'."`
	Glucose    float64 `required:"" help:"Blood glucose in mmol/L."`
	Carbs      float64 `help:"Carbohydrates eaten (g)."`
	HoursSince int     `help:"Hours since last meal (pre-meal slots)."`
	Food       string  `help:"Food details."`
	Exercise   string  `help:"Exercise type."`
	Duration   int     `help:"Exercise duration in minutes."`
	Insulin    float64 `help:"Insulin dose."`
	Meds       string  `help:"Other medications."`
}

func (c *LogCmd) Run(ctx *Context) error {
	bg := context.Background()
	account, err := ctx.Users.FindAccountByEmail(bg, c.Email)
	if err != nil {
		return err
	}
	if account == nil {
		return fmt.Errorf("no account for %s", c.Email)
	}

	date, err := resolveDate(c.Date)
	if err != nil {
		return err
	}

	reading := &domain.Reading{
		UserID:           account.ID,
		Date:             date,
		TimeOfDay:        domain.TimeSlot(c.Slot),
		BloodSugar:       c.Glucose,
		CarbsEaten:       c.Carbs,
		HoursSinceMeal:   c.HoursSince,
		FoodDetails:      c.Food,
		ExerciseType:     c.Exercise,
		ExerciseDuration: c.Duration,
		InsulinDose:      c.Insulin,
		OtherMedications: c.Meds,
	}

	saved, err := ctx.Logs.RecordReading(bg, reading, account)
	if err != nil {
		return err
	}

	fmt.Printf("Saved %s %s: %.1f mmol/L (entry %d)\n", saved.Date, saved.TimeOfDay, saved.BloodSugar, saved.ID)
	return nil
}

type DayCmd struct {
	Email string `required:"" help:"Account email."`
	Date  string `arg:"" help:"Date to show (yyyy-MM-dd or 'today')." default:"today"`
}

func (c *DayCmd) Run(ctx *Context) error {
	bg := context.Background()
	account, err := ctx.Users.FindAccountByEmail(bg, c.Email)
	if err != nil {
		return err
	}
	if account == nil {
		return fmt.Errorf("no account for %s", c.Email)
	}

	date, err := resolveDate(c.Date)
	if err != nil {
		return err
	}

	readings, err := ctx.Logs.EntriesForDate(bg, account.ID, date)
	if err != nil {
		return err
	}

	if len(readings) == 0 {
		fmt.Printf("No entries for %s\n", date)
		return nil
	}

	fmt.Printf("Entries for %s:\n", date)
	for _, r := range readings {
		printReading(r)
	}
	return nil
}

type GraphCmd struct {
	Email string `required:"" help:"Account email."`
	From  string `required:"" help:"Range start (yyyy-MM-dd)."`
	To    string `required:"" help:"Range end (yyyy-MM-dd)."`
}

func (c *GraphCmd) Run(ctx *Context) error {
	bg := context.Background()
	account, err := ctx.Users.FindAccountByEmail(bg, c.Email)
	if err != nil {
		return err
	}
	if account == nil {
		return fmt.Errorf("no account for %s", c.Email)
	}

	readings, err := ctx.Logs.EntriesForRange(bg, account.ID, c.From, c.To)
	if err != nil {
		return err
	}

	for _, r := range readings {
		fmt.Printf("%s\t%s\t%.1f\n", r.Date, r.TimeOfDay, r.BloodSugar)
	}
	return nil
}

func printReading(r domain.Reading) {
	fmt.Printf("  %-15s %.1f mmol/L", r.TimeOfDay, r.BloodSugar)
	if r.CarbsEaten > 0 {
		fmt.Printf("  carbs %.0fg", r.CarbsEaten)
	}
	if r.InsulinDose > 0 {
		fmt.Printf("  insulin %.1f", r.InsulinDose)
	}
	if r.ExerciseType != "" {
		fmt.Printf("  %s %dmin", r.ExerciseType, r.ExerciseDuration)
	}
	if r.FoodDetails != "" {
		fmt.Printf("  (%s)", r.FoodDetails)
	}
	fmt.Println()
}
