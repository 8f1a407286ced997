package main

import (
	"io"
	"testing"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    options
		wantErr bool
	}{
		{
			name: "serve by default",
			args: []string{},
			want: options{},
		},
		{
			name: "create admin",
			args: []string{"-create-admin", "-email", "admin@example.com", "-password", "correct-horse", "-name", "Admin"},
			want: options{CreateAdmin: true, Email: "admin@example.com", Password: "correct-horse", Name: "Admin"},
		},
		{
			name: "name defaults to email",
			args: []string{"-create-admin", "-email", "admin@example.com", "-password", "correct-horse"},
			want: options{CreateAdmin: true, Email: "admin@example.com", Password: "correct-horse", Name: "admin@example.com"},
		},
		{
			name:    "create admin without password",
			args:    []string{"-create-admin", "-email", "admin@example.com"},
			wantErr: true,
		},
		{
			name:    "conflicting modes",
			args:    []string{"-create-admin", "-migrate-down", "-email", "a@b.c", "-password", "x"},
			wantErr: true,
		},
		{
			name:    "unknown flag",
			args:    []string{"-port", "8080"},
			wantErr: true,
		},
		{
			name: "migrate down",
			args: []string{"-migrate-down"},
			want: options{MigrateDown: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseFlags(tt.args, io.Discard)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Expected error, got options %+v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseFlags failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("Expected %+v, got %+v", tt.want, got)
			}
		})
	}
}
