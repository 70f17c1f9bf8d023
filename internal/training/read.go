package training

// Workout type codes sent by the sensors.
const (
	CodeSwimming = "SWM"
	CodeRunning  = "RUN"
	CodeWalking  = "WLK"
)

type variant struct {
	fields int
	build  func(f []float64) Training
}

var variants = map[string]variant{
	CodeSwimming: {5, func(f []float64) Training {
		return Swimming{Base: base(f), LengthPool: f[3], CountPool: int(f[4])}
	}},
	CodeRunning: {3, func(f []float64) Training {
		return Running{Base: base(f)}
	}},
	CodeWalking: {4, func(f []float64) Training {
		return SportsWalking{Base: base(f), Height: f[3]}
	}},
}

func base(f []float64) Base {
	return Base{Action: int(f[0]), Duration: f[1], Weight: f[2]}
}

// Read binds the fields of a sensor package to the training variant named by
// code. Fields are positional:
//
//	SWM: action, duration, weight, pool length, pool laps
//	RUN: action, duration, weight
//	WLK: action, duration, weight, height
func Read(code string, fields []float64) (Training, error) {
	v, ok := variants[code]
	if !ok {
		return nil, &UnknownTypeError{Code: code}
	}
	if len(fields) != v.fields {
		return nil, &ArityError{Code: code, Want: v.fields, Got: len(fields)}
	}
	return v.build(fields), nil
}

// Known reports whether code names a training variant.
func Known(code string) bool {
	_, ok := variants[code]
	return ok
}
