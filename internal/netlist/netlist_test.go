// Copyright (c) 2026 The aigcuts Authors
// SPDX-License-Identifier: MIT

package netlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalDoc = `{
  "modules": {
    "top": {
      "attributes": {"top": "00000000000000000000000000000001"},
      "ports": {
        "a": {"direction": "input", "bits": [2]},
        "y": {"direction": "output", "bits": [3]}
      },
      "cells": {
        "g0": {"type": "BUF", "connections": {"A": [2], "Y": [3]}}
      },
      "netnames": {
        "a": {"bits": [2]}
      }
    }
  }
}`

func TestLoadDecodesMinimalModule(t *testing.T) {
	mod, err := Load([]byte(minimalDoc))
	require.NoError(t, err)

	assert.Equal(t, "top", mod.Name)
	require.Len(t, mod.Ports, 2)
	require.Len(t, mod.Cells, 1)
	assert.Equal(t, "BUF", mod.Cells[0].Type)
	assert.Equal(t, uint32(2), mod.Cells[0].Connections["A"])
	assert.Equal(t, uint32(3), mod.Cells[0].Connections["Y"])
}

func TestLoadRejectsMalformedJSON(t *testing.T) {
	_, err := Load([]byte("{not json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInputMalformed)
}

func TestLoadRejectsMissingTopModule(t *testing.T) {
	doc := `{"modules": {"top": {"attributes": {}, "ports": {}, "cells": {}, "netnames": {}}}}`
	_, err := Load([]byte(doc))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTopModuleMissing)
}

func TestLoadRejectsAmbiguousTopModule(t *testing.T) {
	doc := `{
	  "modules": {
	    "a": {"attributes": {"top": "1"}, "ports": {}, "cells": {}, "netnames": {}},
	    "b": {"attributes": {"top": "1"}, "ports": {}, "cells": {}, "netnames": {}}
	  }
	}`
	_, err := Load([]byte(doc))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTopModuleAmbiguous)
}

func TestLoadRejectsMultiBitPort(t *testing.T) {
	doc := `{
	  "modules": {
	    "top": {
	      "attributes": {"top": "1"},
	      "ports": {"a": {"direction": "input", "bits": [2, 3]}},
	      "cells": {}, "netnames": {}
	    }
	  }
	}`
	_, err := Load([]byte(doc))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrWidthUnsupported)
}

func TestLoadRejectsConstantBit(t *testing.T) {
	doc := `{
	  "modules": {
	    "top": {
	      "attributes": {"top": "1"},
	      "ports": {"a": {"direction": "input", "bits": ["x"]}},
	      "cells": {}, "netnames": {}
	    }
	  }
	}`
	_, err := Load([]byte(doc))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConstantNotSupported)
}

func TestLoadRejectsInoutPort(t *testing.T) {
	doc := `{
	  "modules": {
	    "top": {
	      "attributes": {"top": "1"},
	      "ports": {"a": {"direction": "inout", "bits": [2]}},
	      "cells": {}, "netnames": {}
	    }
	  }
	}`
	_, err := Load([]byte(doc))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInoutNotSupported)
}

func TestIsTopAcceptsDecimalAndBinaryForms(t *testing.T) {
	assert.True(t, isTop("1"))
	assert.True(t, isTop("00000001"))
	assert.False(t, isTop("0"))
	assert.False(t, isTop("00000000"))
	assert.False(t, isTop(""))
}
