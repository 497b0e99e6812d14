package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshal_BuiltPatternsValidate(t *testing.T) {
	for _, steps := range []int{1, 8, 40} {
		p, err := Build(fitted(t, steps), Options{TimeScale: 0.25})
		require.NoError(t, err)
		data, err := Marshal(p)
		require.NoError(t, err, "steps=%d", steps)
		assert.NotEmpty(t, data)
	}
}

func TestValidate_RejectsBadDocuments(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"not json", `{`},
		{"missing pattern", `{"Version": 1}`},
		{"wrong version", `{"Version": 2, "Pattern": [{"Event": {"Time": 0, "EventType": "HapticContinuous", "EventParameters": []}}, {"Event": {"Time": 0, "EventType": "HapticContinuous", "EventParameters": []}}]}`},
		{"intensity above one", `{"Version": 1, "Pattern": [
			{"Event": {"Time": 0, "EventType": "HapticContinuous", "EventDuration": 1, "EventParameters": []}},
			{"ParameterCurve": {"ParameterID": "HapticIntensityControl", "Time": 0,
				"ParameterCurveControlPoints": [{"Time": 0, "ParameterValue": 0}, {"Time": 1, "ParameterValue": 2}]}}]}`},
		{"unknown entry", `{"Version": 1, "Pattern": [{"Audio": {}}, {"Audio": {}}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, Validate([]byte(tt.doc)))
		})
	}
}
