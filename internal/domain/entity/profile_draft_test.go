package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProfileDraft_SetMarksTouched(t *testing.T) {
	var draft ProfileDraft

	ok := draft.Set(FieldPhone, "555-0100")

	assert.True(t, ok)
	assert.Equal(t, "555-0100", draft.Phone)
	assert.True(t, draft.Touched(FieldPhone))
	assert.False(t, draft.Set("favouriteColour", "blue"))
}

func TestProfileDraft_ToggleSubjectRoundTrip(t *testing.T) {
	draft := ProfileDraft{Subjects: []string{"Art"}}

	draft.ToggleSubject("Music", true)
	draft.ToggleSubject("Music", true)
	assert.Equal(t, []string{"Art", "Music"}, draft.Subjects)

	draft.ToggleSubject("Music", false)
	assert.Equal(t, []string{"Art"}, draft.Subjects)

	draft.ToggleSubject("Science", false)
	assert.Equal(t, []string{"Art"}, draft.Subjects)
}

func TestProfileDraft_PresentFields(t *testing.T) {
	draft := ProfileDraft{Phone: "555-0100"}
	draft.Set(FieldBio, "")

	fields := draft.PresentFields()

	assert.Equal(t, Fields{FieldPhone: "555-0100", FieldBio: ""}, fields)
}

func TestProfileDraft_CloneIsDeep(t *testing.T) {
	draft := ProfileDraft{Subjects: []string{"Art"}}
	draft.Set(FieldCity, "Springfield")

	clone := draft.Clone()
	clone.ToggleSubject("Art", false)
	clone.Set(FieldCity, "Shelbyville")

	assert.Equal(t, []string{"Art"}, draft.Subjects)
	assert.Equal(t, "Springfield", draft.City)
	assert.True(t, clone.Touched(FieldSubjects))
	assert.False(t, draft.Touched(FieldSubjects))
}

func TestStudentAssetKey(t *testing.T) {
	assert.Equal(t, "students/uid-1/photo.png", StudentAssetKey("uid-1", "photo.png"))
	assert.Equal(t, "students/uid-1/photo.png", StudentAssetKey("uid-1", "../../photo.png"))
}
