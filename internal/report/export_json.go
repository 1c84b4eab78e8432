package report

import "encoding/json"

func toJSONFile(baseName string, v any) (ExportFile, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return ExportFile{}, err
	}
	return ExportFile{
		Name:        baseName + ".json",
		ContentType: "application/json",
		Data:        data,
	}, nil
}
