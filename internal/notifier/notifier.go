package notifier

import (
	"context"

	"github.com/alp-turan/sugarbyte/internal/domain"
	"github.com/alp-turan/sugarbyte/internal/logger"
)

// Alert carries everything a delivery channel needs to escalate an
// out-of-range reading to the account's doctor.
type Alert struct {
	AccountName string
	Date        string
	TimeOfDay   domain.TimeSlot
	Value       float64 // mmol/L
	Level       string  // "low" or "high"
	DoctorName  string
	DoctorEmail string
}

// Notifier delivers alerts. The alarm service decides whether and once;
// delivery is the sink's problem.
type Notifier interface {
	Notify(ctx context.Context, alert Alert) error
}

// LogNotifier writes alerts to the application log. It is the default sink
// and the stand-in wherever no mail relay is configured.
type LogNotifier struct{}

// NewLogNotifier creates a log-backed notifier
func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

// Notify logs the alert
func (n *LogNotifier) Notify(ctx context.Context, alert Alert) error {
	logger.Warn("Blood glucose out of range",
		"account", alert.AccountName,
		"date", alert.Date,
		"slot", alert.TimeOfDay,
		"value_mmol_l", alert.Value,
		"level", alert.Level,
		"doctor", alert.DoctorName,
		"doctor_email", alert.DoctorEmail,
	)
	return nil
}
