package domain_test

import (
	"testing"

	"go-treeservices-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestServiceLabel(t *testing.T) {
	known := map[string]string{
		"tree-removal":  "Tree Removal",
		"tree-lopping":  "Tree Lopping & Pruning",
		"tree-health":   "Tree Health Assessment",
		"emergency":     "Emergency Services",
		"waste-removal": "Green Waste Removal",
		"land-clearing": "Land Clearing",
		"other":         "Other Service",
	}
	for code, label := range known {
		assert.Equal(t, label, domain.ServiceLabel(code))
	}

	// Unknown codes pass through verbatim
	assert.Equal(t, "stump-grinding", domain.ServiceLabel("stump-grinding"))
	assert.Equal(t, "", domain.ServiceLabel(""))
}
