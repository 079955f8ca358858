package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// templateWindow одно окно доступности в YAML-файле шаблона
type templateWindow struct {
	Start string `yaml:"start"`
	End   string `yaml:"end"`
}

// LoadTemplate загружает недельный шаблон доступности из YAML-файла.
//
// Формат файла - отображение дня недели (0=воскресенье .. 6=суббота) на
// список окон:
//
//	1:
//	  - start: "09:00"
//	    end: "12:00"
//	  - start: "13:00"
//	    end: "17:00"
//
// Окна в пределах дня не проверяются на пересечение (ответственность
// владельца файла)
func LoadTemplate(path string) (domain.WeeklyTemplate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read template file %s: %w", path, err)
	}

	var raw map[int][]templateWindow
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse template file %s: %w", path, err)
	}

	template := make(domain.WeeklyTemplate, len(raw))
	for weekday, windows := range raw {
		if weekday < 0 || weekday > 6 {
			return nil, fmt.Errorf("template: weekday %d out of range [0,6]", weekday)
		}

		converted := make([]domain.TemplateWindow, 0, len(windows))
		for _, w := range windows {
			start, err := parseTimeOfDay(w.Start)
			if err != nil {
				return nil, fmt.Errorf("template: weekday %d: %w", weekday, err)
			}
			end, err := parseTimeOfDay(w.End)
			if err != nil {
				return nil, fmt.Errorf("template: weekday %d: %w", weekday, err)
			}
			if end.MinuteOfDay() <= start.MinuteOfDay() {
				return nil, fmt.Errorf("template: weekday %d: window %s-%s is empty or inverted",
					weekday, w.Start, w.End)
			}
			converted = append(converted, domain.TemplateWindow{Start: start, End: end})
		}
		template[weekday] = converted
	}

	return template, nil
}

// parseTimeOfDay парсит строку "HH:MM" (минуты можно опустить: "9" == "09:00")
func parseTimeOfDay(s string) (domain.TimeOfDay, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return domain.TimeOfDay{}, fmt.Errorf("empty time of day")
	}

	parts := strings.SplitN(s, ":", 2)

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return domain.TimeOfDay{}, fmt.Errorf("invalid hour in %q", s)
	}

	minute := 0
	if len(parts) == 2 {
		minute, err = strconv.Atoi(parts[1])
		if err != nil || minute < 0 || minute > 59 {
			return domain.TimeOfDay{}, fmt.Errorf("invalid minute in %q", s)
		}
	}

	return domain.TimeOfDay{Hour: hour, Minute: minute}, nil
}
