package duvc

// Get reads one property through a transient connection. Callers doing
// repeated access should hold a Camera instead.
func Get(dev Device, prop Property) (PropSetting, error) {
	conn, err := OpenConnection(dev)
	if err != nil {
		return PropSetting{}, err
	}
	defer conn.Close()
	return conn.Get(prop)
}

// Set writes one property through a transient connection.
func Set(dev Device, prop Property, setting PropSetting) error {
	conn, err := OpenConnection(dev)
	if err != nil {
		return err
	}
	defer conn.Close()
	return conn.Set(prop, setting)
}

// GetRange reads one property's range through a transient connection.
func GetRange(dev Device, prop Property) (PropRange, error) {
	conn, err := OpenConnection(dev)
	if err != nil {
		return PropRange{}, err
	}
	defer conn.Close()
	return conn.GetRange(prop)
}
