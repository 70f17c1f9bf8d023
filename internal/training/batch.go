package training

import (
	"fmt"

	"github.com/rcliao/workout-tracker/internal/model"
)

// Policy decides what a batch does when a package fails.
type Policy int

const (
	// PolicyHalt stops the batch at the first failing package.
	PolicyHalt Policy = iota
	// PolicySkip records the failure and continues with the next package.
	PolicySkip
)

// Result is the outcome of one package in a batch. Exactly one of Info and
// Err is meaningful.
type Result struct {
	Package model.Package `json:"package"`
	Info    InfoMessage   `json:"info"`
	Err     error         `json:"-"`
}

// Line returns the rendered summary, or an empty string for a failed package.
func (r Result) Line() string {
	if r.Err != nil {
		return ""
	}
	return r.Info.String()
}

// RunBatch summarizes packages in order. With PolicyHalt the results
// processed so far are returned together with the error of the failing
// package.
func RunBatch(packages []model.Package, policy Policy) ([]Result, error) {
	results := make([]Result, 0, len(packages))
	for i, p := range packages {
		info, err := summarizePackage(p)
		if err != nil && policy == PolicyHalt {
			return results, fmt.Errorf("package %d (%s): %w", i, p.Type, err)
		}
		results = append(results, Result{Package: p, Info: info, Err: err})
	}
	return results, nil
}

func summarizePackage(p model.Package) (InfoMessage, error) {
	t, err := Read(p.Type, p.Data)
	if err != nil {
		return InfoMessage{}, err
	}
	return Summarize(t)
}

// SamplePackages is the smoke-test batch the tracker ships with.
func SamplePackages() []model.Package {
	return []model.Package{
		{Type: CodeSwimming, Data: []float64{720, 1, 80, 25, 40}},
		{Type: CodeRunning, Data: []float64{15000, 1, 75}},
		{Type: CodeWalking, Data: []float64{9000, 1, 75, 180}},
	}
}
