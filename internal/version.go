package internal

// Version is the current sheetlingo release
const Version = "0.4.1"
