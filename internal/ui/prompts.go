package ui

import (
	"fmt"

	"wekker/internal/alarm"

	"github.com/AlecAivazis/survey/v2"
)

// PromptExpression prompts the user for an alarm time expression
func PromptExpression() (string, error) {
	var expression string
	prompt := &survey.Input{
		Message: "When should the alarm ring?",
		Help:    "Examples: 7pm, tomorrow at 6:30, 5 january at 14:30, in 2 days",
	}

	if err := survey.AskOne(prompt, &expression, survey.WithValidator(survey.Required)); err != nil {
		return "", err
	}

	return expression, nil
}

// PromptAlarmName prompts for an alarm name, offering a default
func PromptAlarmName(defaultName string) (string, error) {
	var name string
	prompt := &survey.Input{
		Message: "Alarm name:",
		Default: defaultName,
	}

	if err := survey.AskOne(prompt, &name, survey.WithValidator(survey.Required)); err != nil {
		return "", err
	}

	return name, nil
}

// SelectAlarm presents the user with a list of alarms to pick from
func SelectAlarm(alarms []*alarm.Alarm) (*alarm.Alarm, error) {
	if len(alarms) == 0 {
		return nil, fmt.Errorf("no alarms found")
	}
	if len(alarms) == 1 {
		return alarms[0], nil
	}

	options := make([]string, len(alarms))
	for i, a := range alarms {
		options[i] = describeAlarm(a)
	}

	var selected string
	prompt := &survey.Select{
		Message:  "Select an alarm:",
		Options:  options,
		PageSize: 10,
	}

	if err := survey.AskOne(prompt, &selected); err != nil {
		return nil, err
	}

	for i, option := range options {
		if option == selected {
			return alarms[i], nil
		}
	}

	return nil, fmt.Errorf("alarm not found")
}

// Confirm asks the user for confirmation
func Confirm(message string) (bool, error) {
	var confirmed bool
	prompt := &survey.Confirm{
		Message: message,
		Default: true,
	}

	if err := survey.AskOne(prompt, &confirmed); err != nil {
		return false, err
	}

	return confirmed, nil
}

func describeAlarm(a *alarm.Alarm) string {
	state := string(a.Status)
	if !a.Active {
		state = "off"
	}
	return fmt.Sprintf("%s - %s (%s)", a.Name, a.At.Format("Mon 02 Jan 15:04"), state)
}
