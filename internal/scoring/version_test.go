package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRulesVersion(t *testing.T) {
	version := RulesVersion()
	assert.Regexp(t, `^[0-9a-f]{12}$`, version)
	assert.Equal(t, version, RulesVersion())

	original := KnownComplianceStandards
	t.Cleanup(func() { KnownComplianceStandards = original })
	KnownComplianceStandards = append([]string{"pci dss"}, original...)

	assert.NotEqual(t, version, RulesVersion())
}
