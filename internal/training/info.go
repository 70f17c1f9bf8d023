package training

import "fmt"

// InfoMessage is the summary of one workout.
type InfoMessage struct {
	TrainingType string  `json:"training_type"`
	Duration     float64 `json:"duration"`
	Distance     float64 `json:"distance"`
	Speed        float64 `json:"speed"`
	Calories     float64 `json:"calories"`
}

func (m InfoMessage) String() string {
	return fmt.Sprintf("Тип тренировки: %s; Длительность: %.3f ч.; Дистанция: %.3f км; Ср. скорость: %.3f км/ч; Потрачено ккал: %.3f.",
		m.TrainingType, m.Duration, m.Distance, m.Speed, m.Calories)
}

// Summarize computes distance, then mean speed, then calories for t.
func Summarize(t Training) (InfoMessage, error) {
	t = concrete(t)
	if err := validate(t); err != nil {
		return InfoMessage{}, err
	}

	var m Metrics
	m.Distance = Distance(t)
	m.MeanSpeed = MeanSpeed(t, m.Distance)
	calories, err := Calories(t, m)
	if err != nil {
		return InfoMessage{}, err
	}

	return InfoMessage{
		TrainingType: t.Name(),
		Duration:     t.common().Duration,
		Distance:     m.Distance,
		Speed:        m.MeanSpeed,
		Calories:     calories,
	}, nil
}

func validate(t Training) error {
	if t.common().Duration == 0 {
		return fmt.Errorf("%w: zero duration", ErrInvalidInput)
	}
	if w, ok := t.(SportsWalking); ok && w.Height == 0 {
		return fmt.Errorf("%w: zero height", ErrInvalidInput)
	}
	return nil
}

// Process reads one sensor package and returns its rendered summary line.
func Process(code string, fields []float64) (string, error) {
	t, err := Read(code, fields)
	if err != nil {
		return "", err
	}
	info, err := Summarize(t)
	if err != nil {
		return "", err
	}
	return info.String(), nil
}
