package timegrid

import "errors"

// ErrInvalidWindow возвращается при некорректных параметрах сетки
var ErrInvalidWindow = errors.New("timegrid: invalid grid configuration")
