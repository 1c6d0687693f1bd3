package tgx

func FilterCommand(command string) FilterFunc {
	return func(c *Context) bool {
		return c.Command == command
	}
}

func FilterAnyCommand() FilterFunc {
	return func(c *Context) bool {
		return c.Command != ""
	}
}

func FilterNotCommand() FilterFunc {
	return func(c *Context) bool {
		return c.Command == ""
	}
}

func FilterIsMessage() FilterFunc {
	return func(c *Context) bool {
		return c.Update.Message != nil
	}
}

func FilterIsDocument() FilterFunc {
	return func(c *Context) bool {
		return c.Update.Message != nil && c.Update.Message.Document != nil
	}
}
