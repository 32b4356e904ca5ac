package models

import (
	"strings"

	"github.com/spf13/cast"
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// Profile keeps numeric fields as the strings the user typed; use the
// accessors to read them as numbers.
type Profile struct {
	Name   string `json:"name"`
	Gender Gender `json:"gender"`
	Age    string `json:"age"`
	Height string `json:"height"`
	Weight string `json:"weight"`
}

// ProfileUpdate is a partial profile. Nil fields are left untouched by Merge.
type ProfileUpdate struct {
	Name   *string `json:"name,omitempty"`
	Gender *Gender `json:"gender,omitempty"`
	Age    *string `json:"age,omitempty"`
	Height *string `json:"height,omitempty"`
	Weight *string `json:"weight,omitempty"`
}

func (p Profile) Merge(u ProfileUpdate) Profile {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Gender != nil {
		p.Gender = *u.Gender
	}
	if u.Age != nil {
		p.Age = *u.Age
	}
	if u.Height != nil {
		p.Height = *u.Height
	}
	if u.Weight != nil {
		p.Weight = *u.Weight
	}
	return p
}

func (p Profile) AgeYears() float64 {
	return toNumber(p.Age)
}

func (p Profile) HeightCm() float64 {
	return toNumber(p.Height)
}

func (p Profile) WeightKg() float64 {
	return toNumber(p.Weight)
}

// toNumber reads a user-entered numeric string; anything unparsable is 0.
func toNumber(s string) float64 {
	return cast.ToFloat64(strings.TrimSpace(s))
}
