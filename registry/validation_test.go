package registry_test

import (
	"reflect"
	"testing"

	"github.com/agentstation/flume/registry"
)

func valueEqual(a, b any) bool {
	return reflect.DeepEqual(a, b)
}

func TestValidateNodeConfig(t *testing.T) {
	meta := (&registry.MathNodeBuilder{}).Metadata()

	tests := []struct {
		name    string
		config  map[string]any
		wantErr bool
	}{
		{
			name:   "valid",
			config: map[string]any{"operation": "add", "operand": 5},
		},
		{
			name:    "missing operand",
			config:  map[string]any{"operation": "add"},
			wantErr: true,
		},
		{
			name:    "operand wrong type",
			config:  map[string]any{"operation": "add", "operand": "five"},
			wantErr: true,
		},
		{
			name:    "operation outside enum",
			config:  map[string]any{"operation": "modulo", "operand": 5},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := registry.ValidateNodeConfig(&meta, tt.config)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateNodeConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateNodeConfigNoSchema(t *testing.T) {
	meta := registry.NodeMetadata{Type: "free-form"}
	if err := registry.ValidateNodeConfig(&meta, map[string]any{"anything": true}); err != nil {
		t.Errorf("ValidateNodeConfig() error = %v, want nil without a schema", err)
	}
}
