// Package training converts raw sensor packages into workout summaries.
package training

const (
	mInKm  = 1000
	minInH = 60

	lenStep         = 0.65
	swimmingLenStep = 1.38

	runningCaloriesMeanSpeedMultiplier = 18
	runningCaloriesMeanSpeedShift      = 1.79

	walkingCaloriesWeightMultiplier = 0.035
	walkingSpeedHeightMultiplier    = 0.029
	kmhInMsec                       = 0.278
	cmInM                           = 100

	swimmingCaloriesMeanSpeedShift   = 1.1
	swimmingCaloriesWeightMultiplier = 2
)

// Training is a workout bound to one activity variant.
// The set of implementations is closed: Base, Running, SportsWalking, Swimming,
// and pointers to them.
type Training interface {
	// Name is the display name used in the summary line.
	Name() string
	common() Base
}

// Base holds the fields every workout shares. On its own it has no calorie
// formula.
type Base struct {
	Action   int     // steps or strokes
	Duration float64 // hours
	Weight   float64 // kg
}

func (b Base) Name() string { return "Training" }
func (b Base) common() Base { return b }

// Running is a run.
type Running struct {
	Base
}

func (Running) Name() string { return "Running" }

// SportsWalking is a race walk.
type SportsWalking struct {
	Base
	Height float64 // cm
}

func (SportsWalking) Name() string { return "SportsWalking" }

// Swimming is a pool swim. Mean speed comes from the pool laps, not from the
// stroke count.
type Swimming struct {
	Base
	LengthPool float64 // m
	CountPool  int
}

func (Swimming) Name() string { return "Swimming" }

// concrete dereferences pointer variants so the formulas only switch on
// values. A nil pointer is returned unchanged.
func concrete(t Training) Training {
	switch p := t.(type) {
	case *Base:
		if p != nil {
			return *p
		}
	case *Running:
		if p != nil {
			return *p
		}
	case *SportsWalking:
		if p != nil {
			return *p
		}
	case *Swimming:
		if p != nil {
			return *p
		}
	}
	return t
}

// Metrics are the values calories are derived from.
type Metrics struct {
	Distance  float64 // km
	MeanSpeed float64 // km/h
}

// Distance returns the distance covered in km.
func Distance(t Training) float64 {
	t = concrete(t)
	step := lenStep
	if _, ok := t.(Swimming); ok {
		step = swimmingLenStep
	}
	return float64(t.common().Action) * step / mInKm
}

// MeanSpeed returns the mean speed in km/h. distance must be the result of
// Distance for the same workout; Swimming ignores it.
func MeanSpeed(t Training, distance float64) float64 {
	switch t := concrete(t).(type) {
	case Swimming:
		return t.LengthPool * float64(t.CountPool) / mInKm / t.Duration
	default:
		return distance / t.common().Duration
	}
}

// Calories returns the energy spent in kcal.
//
// Products that feed an addition are converted explicitly so the compiler
// cannot fuse them into an FMA instruction.
func Calories(t Training, m Metrics) (float64, error) {
	switch t := concrete(t).(type) {
	case Running:
		durationMin := t.Duration * minInH
		return (float64(runningCaloriesMeanSpeedMultiplier*m.MeanSpeed) + runningCaloriesMeanSpeedShift) *
			t.Weight / mInKm * durationMin, nil
	case SportsWalking:
		durationMin := t.Duration * minInH
		speedMs := m.MeanSpeed * kmhInMsec
		heightM := t.Height / cmInM
		return (float64(walkingCaloriesWeightMultiplier*t.Weight) +
			float64(speedMs*speedMs/heightM*walkingSpeedHeightMultiplier*t.Weight)) * durationMin, nil
	case Swimming:
		return (m.MeanSpeed + swimmingCaloriesMeanSpeedShift) *
			swimmingCaloriesWeightMultiplier * t.Weight * t.Duration, nil
	default:
		return 0, ErrUnimplemented
	}
}
