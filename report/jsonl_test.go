package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/vecbench"
	"github.com/hupe1980/vecbench/codec"
)

func TestJSONLEmitsHeaderFirst(t *testing.T) {
	var buf bytes.Buffer
	j := NewJSONL(&buf, testInfo())

	j.RecordMetric(vecbench.MetricRecord{Architecture: vecbench.ArchStandard, Kind: vecbench.OpLatency, Name: "scan", Value: 1.5, Unit: "ms"})
	j.RecordCompliance(vecbench.ComplianceRecord{CheckName: "schema/well-formed", Passed: true})
	require.NoError(t, j.Finish())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)

	var header struct {
		Type string `json:"type"`
		Run  struct {
			RunID  string `json:"run_id"`
			ISA    string `json:"isa"`
			Config struct {
				VectorCount int `json:"vector_count"`
			} `json:"config"`
		} `json:"run"`
	}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &header))
	assert.Equal(t, "run", header.Type)
	assert.Equal(t, testInfo().RunID, header.Run.RunID)
	assert.Equal(t, "amd64/avx2", header.Run.ISA)
	assert.Equal(t, 10000, header.Run.Config.VectorCount)

	var metric struct {
		Type   string                `json:"type"`
		Metric vecbench.MetricRecord `json:"metric"`
	}
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &metric))
	assert.Equal(t, "metric", metric.Type)
	assert.Equal(t, "scan", metric.Metric.Name)
	assert.Equal(t, 1.5, metric.Metric.Value)
	assert.Equal(t, vecbench.OpLatency, metric.Metric.Kind)

	var compliance struct {
		Type       string                    `json:"type"`
		Compliance vecbench.ComplianceRecord `json:"compliance"`
	}
	require.NoError(t, json.Unmarshal([]byte(lines[2]), &compliance))
	assert.Equal(t, "compliance", compliance.Type)
	assert.True(t, compliance.Compliance.Passed)
}

func TestJSONLEmptyRunWritesHeader(t *testing.T) {
	var buf bytes.Buffer
	j := NewJSONL(&buf, testInfo())

	require.NoError(t, j.Finish())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], `"type":"run"`)
}

func TestJSONLWithCodec(t *testing.T) {
	var buf bytes.Buffer
	j := NewJSONL(&buf, testInfo(), WithCodec(codec.JSON{}))

	j.RecordMetric(vecbench.MetricRecord{Name: "scan"})
	require.NoError(t, j.Finish())
	assert.Equal(t, 2, strings.Count(buf.String(), "\n"))
}

type failWriter struct{}

var errSinkClosed = errors.New("sink closed")

func (failWriter) Write([]byte) (int, error) { return 0, errSinkClosed }

func TestJSONLWriteErrorSticks(t *testing.T) {
	j := NewJSONL(failWriter{}, testInfo())

	j.RecordMetric(vecbench.MetricRecord{Name: "scan"})
	j.RecordCompliance(vecbench.ComplianceRecord{CheckName: "schema/well-formed"})

	err := j.Finish()
	require.Error(t, err)
	assert.ErrorIs(t, err, errSinkClosed)
}
