package prompt

import "github.com/manifoldco/promptui"

// WithRunner replaces the prompt driver for tests.
func (c *Confirmer) WithRunner(run func(p *promptui.Prompt) (string, error)) *Confirmer {
	c.run = run
	return c
}
