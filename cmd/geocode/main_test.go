package main

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/mkonrad/geocachy/pkg/geocode"
)

func TestRenderTable(t *testing.T) {
	addresses := []string{"wzb berlin", "nowhere at all"}
	results := map[string][]geocode.Result{
		"wzb berlin": {{
			FormattedAddress: "Reichpietschufer 50, 10785 Berlin, Germany",
			Latitude:         52.506712,
			Longitude:        13.365418,
		}},
	}
	cached := map[string]bool{"wzb berlin": true}

	var b bytes.Buffer
	renderTable(&b, addresses, results, cached)
	got := b.String()

	for _, want := range []string{"CACHED", "52.506712", "Reichpietschufer 50", "yes"} {
		if !strings.Contains(got, want) {
			t.Errorf("expected table to contain %q, got:\n%s", want, got)
		}
	}

	// The unresolved address still gets a row, marked as uncached.
	if !strings.Contains(got, "nowhere at all") {
		t.Errorf("expected a row for the unresolved address, got:\n%s", got)
	}

	if !strings.Contains(got, "no") {
		t.Errorf("expected a cache miss marker, got:\n%s", got)
	}
}

func TestReadAddresses(t *testing.T) {
	testCases := []struct {
		desc  string
		input string
		want  []string
	}{
		{
			desc:  "when the input is empty, no addresses are read",
			input: "",
			want:  nil,
		},
		{
			desc:  "when lines are given, each becomes an address",
			input: "wzb berlin\nbrandenburger tor\n",
			want:  []string{"wzb berlin", "brandenburger tor"},
		},
		{
			desc:  "blank lines are skipped",
			input: "wzb berlin\n\n\nbrandenburger tor",
			want:  []string{"wzb berlin", "brandenburger tor"},
		},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			got := readAddresses(strings.NewReader(tC.input))
			if !reflect.DeepEqual(got, tC.want) {
				t.Errorf("got %v, expected %v", got, tC.want)
			}
		})
	}
}
