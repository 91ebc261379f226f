package router

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fyrsmithlabs/jobd/internal/job"
)

func TestSelectModel_HaikuForSimple(t *testing.T) {
	assert.Equal(t, job.TierHaiku, SelectModel("rename variable"))
	assert.Equal(t, job.TierHaiku, SelectModel("fix typo in readme"))
	assert.Equal(t, job.TierHaiku, SelectModel("format code"))
}

func TestSelectModel_HaikuForShortDescription(t *testing.T) {
	assert.Equal(t, job.TierHaiku, SelectModel("add a button"))
}

func TestSelectModel_OpusForComplex(t *testing.T) {
	assert.Equal(t, job.TierOpus, SelectModel("architect the new payment system"))
	assert.Equal(t, job.TierOpus, SelectModel("refactor the entire auth module"))
	assert.Equal(t, job.TierOpus, SelectModel("redesign the database schema for scaling"))
}

func TestSelectModel_SonnetDefault(t *testing.T) {
	assert.Equal(t, job.TierSonnet, SelectModel("implement the user profile page"))
}

func TestSelectModel_OpusForLongComplexDescription(t *testing.T) {
	assert.Equal(t, job.TierOpus, SelectModel(
		"implement a complex multi-file authentication system with OAuth2 and JWT token refresh",
	))
}

func TestSelectModel_WordCountBoostsComplex(t *testing.T) {
	// Over 15 words and over 100 characters with no keywords on either
	// side still tips the selection to Opus.
	desc := "please carefully plan and then implement the new thing for the app with all the details and edge cases handled"
	assert.Equal(t, job.TierOpus, SelectModel(desc))
}
