package db

// timeFormat is the layout used for DATETIME columns so sqlite date
// functions can read them.
const timeFormat = "2006-01-02 15:04:05"
