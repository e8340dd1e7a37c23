package skelegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeVariableName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"--gap", "--gap"},
		{"gap", "--gap"},
		{"-gap", "--gap"},
		{"  content width ", "--content-width"},
		{"", ""},
		{"   ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeVariableName(tt.in))
		})
	}
}

func TestNormalizeSelector(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"p", ".p"},
		{".p", ".p"},
		{"#main", "#main"},
		{":root", ":root"},
		{"[data-x]", "[data-x]"},
		{" text ", ".text"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeSelector(tt.in))
		})
	}
}

func TestClassNameFromLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"btn-primary", "btn-primary"},
		{".card", "card"},
		{"Primary Button", "primary-button"},
		{"2 Column Card", "c-2-column-card"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassNameFromLabel(tt.in))
		})
	}
}

func TestBaseClassName(t *testing.T) {
	assert.Equal(t, ".p", baseClassName("p-*"))
	assert.Equal(t, ".text", baseClassName(".text-*"))
	assert.Equal(t, ".gap", baseClassName("gap"))
}
