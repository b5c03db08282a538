package domain_test

import (
	"testing"

	"github.com/smart-ledger/ledger-backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestDeriveSite(t *testing.T) {
	testCases := []struct {
		name            string
		input           string
		wantLabel       string
		wantCategorized bool
	}{
		{"name with site tag", "Ramesh/SiteA", "SiteA", true},
		{"site tag with spaces", "Ramesh Kumar / Site B ", "Site B", true},
		{"no site tag", "XYZ Materials", "Extra", false},
		{"trailing slash only", "Ramesh/", "Extra", false},
		{"slash then whitespace", "Ramesh/   ", "Extra", false},
		{"only first slash significant", "Ramesh/SiteA/Block 2", "SiteA/Block 2", true},
		{"empty name", "", "Extra", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			site := domain.DeriveSite(tc.input)
			assert.Equal(t, tc.wantLabel, site.Label())
			assert.Equal(t, !tc.wantCategorized, site.IsUncategorized())
		})
	}
}

func TestPersonName(t *testing.T) {
	assert.Equal(t, "Ramesh", domain.PersonName("Ramesh/SiteA"))
	assert.Equal(t, "Ramesh Kumar", domain.PersonName(" Ramesh Kumar / Site B"))
	assert.Equal(t, "XYZ Materials", domain.PersonName("XYZ Materials"))
}

func TestNormalizeSiteTracksNameEdits(t *testing.T) {
	txn := domain.Transaction{Name: "Ramesh/SiteA"}
	txn.NormalizeSite()
	assert.Equal(t, "SiteA", txn.Site.SiteName())

	// Editing the name without a tag must drop the stale attribution.
	txn.Name = "Ramesh"
	txn.NormalizeSite()
	assert.True(t, txn.Site.IsUncategorized())
	assert.Equal(t, domain.UncategorizedLabel, txn.Site.Label())
}

func TestNamedSiteNeverStoresSentinel(t *testing.T) {
	// "Extra" typed by a user is the uncategorized bucket, not a site named Extra.
	assert.True(t, domain.NamedSite("Extra").IsUncategorized())
	assert.True(t, domain.NamedSite("  ").IsUncategorized())
	assert.False(t, domain.NamedSite("SiteA").IsUncategorized())
}
