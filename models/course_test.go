package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAverageRating(t *testing.T) {
	assert.Equal(t, 0.0, AverageRating(nil))
	assert.Equal(t, 5.0, AverageRating([]Rating{{UID: "a", Value: 5}}))
	assert.Equal(t, 4.0, AverageRating([]Rating{
		{UID: "a", Value: 5}, {UID: "b", Value: 4}, {UID: "c", Value: 3},
	}))
	// 11/3 = 3.666... rounds to one decimal place
	assert.Equal(t, 3.7, AverageRating([]Rating{
		{UID: "a", Value: 5}, {UID: "b", Value: 5}, {UID: "c", Value: 1},
	}))
}

func TestReviewID(t *testing.T) {
	assert.Equal(t, "ann_synth101", ReviewID("ann", "synth101"))
}
