package channel

type Channel string

const ProctoringChannel Channel = "trustproctor:events"
