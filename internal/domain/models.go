package domain

// DateFormat is the storage layout for Reading.Date (ISO yyyy-MM-dd).
const DateFormat = "2006-01-02"

// LogbookType is the user's preferred logbook style.
type LogbookType string

const (
	LogbookSimple        LogbookType = "Simple"
	LogbookComprehensive LogbookType = "Comprehensive"
	LogbookIntensive     LogbookType = "Intensive"
)

// TimeSlot is one of the fixed daily slots a reading is recorded against.
type TimeSlot string

const (
	BreakfastPre  TimeSlot = "Breakfast Pre"
	BreakfastPost TimeSlot = "Breakfast Post"
	LunchPre      TimeSlot = "Lunch Pre"
	LunchPost     TimeSlot = "Lunch Post"
	DinnerPre     TimeSlot = "Dinner Pre"
	DinnerPost    TimeSlot = "Dinner Post"
	Bedtime       TimeSlot = "Bedtime"
)

// TimeSlots lists every valid slot. Bedtime has no Pre/Post split.
var TimeSlots = []TimeSlot{
	BreakfastPre, BreakfastPost,
	LunchPre, LunchPost,
	DinnerPre, DinnerPost,
	Bedtime,
}

// Valid reports whether s is one of the known slots.
func (s TimeSlot) Valid() bool {
	for _, slot := range TimeSlots {
		if s == slot {
			return true
		}
	}
	return false
}

// PreMeal reports whether s is a fasting (pre-meal) slot. Bedtime counts as
// post-meal for alarm threshold purposes.
func (s TimeSlot) PreMeal() bool {
	const suffix = " Pre"
	return len(s) > len(suffix) && string(s[len(s)-len(suffix):]) == suffix
}

// Account represents a registered user and their doctor's contact details.
type Account struct {
	ID                   uint        `gorm:"column:id;primaryKey"`
	Name                 string      `gorm:"column:name"`
	DiabetesType         string      `gorm:"column:diabetesType"`
	InsulinType          string      `gorm:"column:insulinType"`
	InsulinAdmin         string      `gorm:"column:insulinAdmin"`
	Email                string      `gorm:"column:email"`
	Phone                string      `gorm:"column:phone"`
	DoctorName           string      `gorm:"column:doctorName"`
	DoctorEmail          string      `gorm:"column:doctorEmail"`
	DoctorAddress        string      `gorm:"column:doctorAddress"`
	DoctorEmergencyPhone string      `gorm:"column:doctorEmergencyPhone"`
	LogbookType          LogbookType `gorm:"column:logbookType"`
	Password             string      `gorm:"column:password"`
}

// TableName maps Account onto the legacy user table.
func (Account) TableName() string { return "user" }

// Reading is one measurement set for a user, date and time slot.
// At most one Reading exists per (UserID, Date, TimeOfDay).
type Reading struct {
	ID               uint     `gorm:"column:id;primaryKey"`
	UserID           uint     `gorm:"column:userId"`
	Date             string   `gorm:"column:date"` // yyyy-MM-dd
	TimeOfDay        TimeSlot `gorm:"column:timeOfDay"`
	BloodSugar       float64  `gorm:"column:bloodSugar"` // mmol/L
	CarbsEaten       float64  `gorm:"column:carbsEaten"`
	HoursSinceMeal   int      `gorm:"column:hoursSinceMeal"` // pre-meal slots only
	FoodDetails      string   `gorm:"column:foodDetails"`
	ExerciseType     string   `gorm:"column:exerciseType"`
	ExerciseDuration int      `gorm:"column:exerciseDuration"` // minutes
	InsulinDose      float64  `gorm:"column:insulinDose"`
	OtherMedications string   `gorm:"column:otherMedications"`
}

// TableName maps Reading onto the legacy logentry table.
func (Reading) TableName() string { return "logentry" }
