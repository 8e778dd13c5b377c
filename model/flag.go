package model

type Flags struct {
	Region    string
	Days      int
	Instances bool
	Trend     bool
	Export    string
}
