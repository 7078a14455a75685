package reference

import (
	"os"

	"github.com/pkg/errors"
	"go.yaml.in/yaml/v4"

	"github.com/vsinha/winexc/pkg/domain/entities"
	"github.com/vsinha/winexc/pkg/domain/reference"
)

// File is the on-disk shape of a reference override:
//
//	markets:
//	  ABQ: Albuquerque
//	city_aliases:
//	  STL: [St. Louis]
//	days:
//	  - {number: 0, abbreviation: Sun, name: Sunday}
type File struct {
	Markets     map[string]string   `yaml:"markets"`
	CityAliases map[string][]string `yaml:"city_aliases"`
	Days        []DayEntry          `yaml:"days"`
}

type DayEntry struct {
	Number       int    `yaml:"number"`
	Abbreviation string `yaml:"abbreviation"`
	Name         string `yaml:"name"`
}

// Load returns the built-in tables, extended by the file at path when one
// is given
func Load(path string) (*reference.Data, error) {
	base := reference.Default()
	if path == "" {
		return base, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read reference file")
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.Wrap(err, "unmarshal reference file")
	}

	markets := make(map[entities.MarketCode]string, len(file.Markets))
	for code, name := range file.Markets {
		markets[entities.MarketCode(code)] = name
	}
	aliases := make(map[entities.MarketCode][]string, len(file.CityAliases))
	for code, names := range file.CityAliases {
		aliases[entities.MarketCode(code)] = names
	}
	days := make([]reference.Day, 0, len(file.Days))
	for _, day := range file.Days {
		days = append(days, reference.Day{
			Number:       entities.DayOfWeek(day.Number),
			Abbreviation: day.Abbreviation,
			Name:         day.Name,
		})
	}

	extended, err := base.Extend(markets, aliases, days)
	if err != nil {
		return nil, errors.Wrapf(err, "reference file %s", path)
	}
	return extended, nil
}
