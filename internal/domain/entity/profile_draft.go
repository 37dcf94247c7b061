package entity

import (
	"slices"
	"strings"
)

// ProfileDraft is the student long-form profile collected across the form steps.
// The validate tags are the per-step required-field rules.
type ProfileDraft struct {
	// Personal
	FirstName   string `json:"firstName" validate:"required"`
	LastName    string `json:"lastName" validate:"required"`
	StudentID   string `json:"studentId"`
	DateOfBirth string `json:"dateOfBirth" validate:"required,datetime=2006-01-02"`
	Gender      string `json:"gender"`

	// Contact
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`

	// Guardian
	ParentName       string `json:"parentName"`
	ParentEmail      string `json:"parentEmail" validate:"omitempty,email"`
	ParentPhone      string `json:"parentPhone"`
	EmergencyContact string `json:"emergencyContact"`
	EmergencyPhone   string `json:"emergencyPhone"`

	// Academic
	ClassGrade        string   `json:"classGrade" validate:"required"`
	Subjects          []string `json:"subjects"`
	PreviousSchool    string   `json:"previousSchool"`
	Interests         string   `json:"interests"`
	MedicalConditions string   `json:"medicalConditions"`
	Allergies         string   `json:"allergies"`

	Bio      string `json:"bio"`
	PhotoURL string `json:"photoUrl"`

	touched map[string]struct{}
}

type textField struct {
	name string
	ref  func(*ProfileDraft) *string
}

var textFields = []textField{
	{FieldFirstName, func(d *ProfileDraft) *string { return &d.FirstName }},
	{FieldLastName, func(d *ProfileDraft) *string { return &d.LastName }},
	{FieldStudentID, func(d *ProfileDraft) *string { return &d.StudentID }},
	{FieldDateOfBirth, func(d *ProfileDraft) *string { return &d.DateOfBirth }},
	{FieldGender, func(d *ProfileDraft) *string { return &d.Gender }},
	{FieldEmail, func(d *ProfileDraft) *string { return &d.Email }},
	{FieldPhone, func(d *ProfileDraft) *string { return &d.Phone }},
	{FieldAddress, func(d *ProfileDraft) *string { return &d.Address }},
	{FieldCity, func(d *ProfileDraft) *string { return &d.City }},
	{FieldState, func(d *ProfileDraft) *string { return &d.State }},
	{FieldZipCode, func(d *ProfileDraft) *string { return &d.ZipCode }},
	{FieldParentName, func(d *ProfileDraft) *string { return &d.ParentName }},
	{FieldParentEmail, func(d *ProfileDraft) *string { return &d.ParentEmail }},
	{FieldParentPhone, func(d *ProfileDraft) *string { return &d.ParentPhone }},
	{FieldEmergencyContact, func(d *ProfileDraft) *string { return &d.EmergencyContact }},
	{FieldEmergencyPhone, func(d *ProfileDraft) *string { return &d.EmergencyPhone }},
	{FieldClassGrade, func(d *ProfileDraft) *string { return &d.ClassGrade }},
	{FieldPreviousSchool, func(d *ProfileDraft) *string { return &d.PreviousSchool }},
	{FieldInterests, func(d *ProfileDraft) *string { return &d.Interests }},
	{FieldMedicalConditions, func(d *ProfileDraft) *string { return &d.MedicalConditions }},
	{FieldAllergies, func(d *ProfileDraft) *string { return &d.Allergies }},
	{FieldBio, func(d *ProfileDraft) *string { return &d.Bio }},
	{FieldPhotoURL, func(d *ProfileDraft) *string { return &d.PhotoURL }},
}

func lookupTextField(name string) (textField, bool) {
	for _, f := range textFields {
		if f.name == name {
			return f, true
		}
	}

	return textField{}, false
}

// IsTextField reports whether name is a single-valued draft field.
func IsTextField(name string) bool {
	_, ok := lookupTextField(name)

	return ok
}

// Load pre-populates the draft from a stored document.
func (d *ProfileDraft) Load(fields Fields) {
	for _, f := range textFields {
		*f.ref(d) = fields.String(f.name)
	}
	d.Subjects = fields.Strings(FieldSubjects)
}

// Set assigns one named text field and marks it touched.
// It returns false when name is not a draft field.
func (d *ProfileDraft) Set(name, value string) bool {
	f, ok := lookupTextField(name)
	if !ok {
		return false
	}
	*f.ref(d) = value
	d.touch(name)

	return true
}

// Get returns the value of one named text field.
func (d *ProfileDraft) Get(name string) (string, bool) {
	f, ok := lookupTextField(name)
	if !ok {
		return "", false
	}

	return *f.ref(d), true
}

// ToggleSubject inserts subject when checked and removes it otherwise.
func (d *ProfileDraft) ToggleSubject(subject string, checked bool) {
	idx := slices.Index(d.Subjects, subject)
	switch {
	case checked && idx < 0:
		d.Subjects = append(d.Subjects, subject)
	case !checked && idx >= 0:
		d.Subjects = slices.Delete(d.Subjects, idx, idx+1)
	}
	d.touch(FieldSubjects)
}

// HasSubject reports whether subject is selected.
func (d *ProfileDraft) HasSubject(subject string) bool {
	return slices.Contains(d.Subjects, subject)
}

// Touched reports whether the named field was explicitly mutated.
func (d *ProfileDraft) Touched(name string) bool {
	_, ok := d.touched[name]

	return ok
}

func (d *ProfileDraft) touch(name string) {
	if d.touched == nil {
		d.touched = make(map[string]struct{})
	}
	d.touched[name] = struct{}{}
}

// FullName joins first and last name.
func (d *ProfileDraft) FullName() string {
	return strings.TrimSpace(strings.TrimSpace(d.FirstName) + " " + strings.TrimSpace(d.LastName))
}

// PresentFields returns the fields to merge: every non-empty or touched field.
func (d *ProfileDraft) PresentFields() Fields {
	fields := Fields{}
	for _, f := range textFields {
		value := *f.ref(d)
		if value != "" || d.Touched(f.name) {
			fields[f.name] = value
		}
	}
	if len(d.Subjects) > 0 || d.Touched(FieldSubjects) {
		subjects := append([]string{}, d.Subjects...)
		fields[FieldSubjects] = subjects
	}

	return fields
}

// Clone returns a deep copy of the draft, touched set included.
func (d *ProfileDraft) Clone() ProfileDraft {
	out := *d
	out.Subjects = slices.Clone(d.Subjects)
	if d.touched != nil {
		out.touched = make(map[string]struct{}, len(d.touched))
		for k := range d.touched {
			out.touched[k] = struct{}{}
		}
	}

	return out
}
