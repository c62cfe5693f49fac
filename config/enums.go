package config

import "tabletpl/common"

//go:generate go tool go-enum --marshal --names

// Serialization format of exported template documents.
// ENUM(json, yaml)
type ExportFormat int

// Document returns matching document codec.
func (f ExportFormat) Document() common.DocumentFormat {
	switch f {
	case ExportFormatYaml:
		return common.DocumentFormatYaml
	default:
		return common.DocumentFormatJson
	}
}

func (f ExportFormat) Ext() string {
	switch f {
	case ExportFormatJson:
		return ".json"
	case ExportFormatYaml:
		return ".yaml"
	default:
		// this should never happen
		panic("unsupported format requested")
	}
}
