package printer

// Command команда ОС для отправки файла на печать
type Command struct {
	Name string
	Args []string
}

// CommandFor возвращает команду печати для goos
func CommandFor(goos, path string) (Command, error) {
	switch goos {
	case "windows":
		return Command{Name: "cmd", Args: []string{"/C", "start", "/min", "", path}}, nil
	case "darwin":
		return Command{Name: "lpr", Args: []string{path}}, nil
	case "linux":
		return Command{Name: "lp", Args: []string{path}}, nil
	default:
		return Command{}, ErrUnsupportedOS
	}
}
