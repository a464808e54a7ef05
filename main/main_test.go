package main

import (
	"testing"
)

func TestGetModeName(t *testing.T) {
	table := []struct {
		box, example string
		mode         string
		ok           bool
	}{
		{"box.config", "", "Box", true},
		{"", "Box", "ExampleConfig", true},
		{"", "", "", false},
		{"box.config", "Box", "", false},
	}

	for i, test := range table {
		box, example := test.box, test.example
		vars := map[string]*string{"Box": &box, "ExampleConfig": &example}
		mode, err := getModeName(vars)
		if (err == nil) != test.ok {
			t.Errorf("%d) expected ok = %v, got error %v", i+1, test.ok, err)
		} else if mode != test.mode {
			t.Errorf("%d) expected mode %q, got %q", i+1, test.mode, mode)
		}
	}
}

func TestSuffixName(t *testing.T) {
	table := []struct {
		fname, suffix, out string
	}{
		{"plot.png", "rate", "plot_rate.png"},
		{"out/run.1.pdf", "spectrum", "out/run.1_spectrum.pdf"},
		{"plot", "rate", "plot_rate"},
	}

	for i, test := range table {
		out := suffixName(test.fname, test.suffix)
		if out != test.out {
			t.Errorf("%d) expected %q, got %q", i+1, test.out, out)
		}
	}
}
