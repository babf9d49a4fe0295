package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRankOf(t *testing.T) {
	assert.Equal(t, 0, RankOf(CustomerTypeNonCustomer))
	assert.Equal(t, 1, RankOf(CustomerTypeNew))
	assert.Equal(t, 3, RankOf(CustomerTypeOccasional))
	assert.Equal(t, 5, RankOf(CustomerTypeVip))

	// unknown tokens rank at the bottom
	assert.Equal(t, 0, RankOf("Platinum"))
}

func TestEligibleTypesAtOrBelow(t *testing.T) {
	assert.Equal(t,
		[]string{CustomerTypeNonCustomer, CustomerTypeNew, CustomerTypeInfrequent},
		EligibleTypesAtOrBelow(CustomerTypeInfrequent))

	assert.Equal(t,
		[]string{CustomerTypeNonCustomer},
		EligibleTypesAtOrBelow(CustomerTypeNonCustomer))

	assert.Len(t, EligibleTypesAtOrBelow(CustomerTypeVip), 6)
}
