package constant

// InitialArtifact is the document every new session starts from. It is a
// complete, self-contained page so the preview surface always has something
// renderable before the first synthesis round-trip.
const InitialArtifact = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Vibe Code Generated App</title>
    <script src="https://cdn.tailwindcss.com"></script>
    <link rel="preconnect" href="https://fonts.googleapis.com">
    <link rel="preconnect" href="https://fonts.gstatic.com" crossorigin>
    <link href="https://fonts.googleapis.com/css2?family=Inter:wght@400;500;600;700;800&display=swap" rel="stylesheet">
    <style>
        body { font-family: 'Inter', sans-serif; }
        @keyframes background-pan {
            0% { background-position: 0% 50%; }
            50% { background-position: 100% 50%; }
            100% { background-position: 0% 50%; }
        }
        .animated-gradient {
            background: linear-gradient(90deg, #1e1b4b, #312e81, #4f46e5, #312e81, #1e1b4b);
            background-size: 400% 400%;
            animation: background-pan 15s ease infinite;
        }
    </style>
</head>
<body class="bg-[#0a0a0a] text-white flex items-center justify-center h-screen font-sans">
    <div class="text-center p-8 space-y-6">
        <div class="relative w-24 h-24 mx-auto">
            <div class="absolute inset-0 bg-gradient-to-br from-indigo-500 to-purple-600 rounded-full blur-xl"></div>
            <div class="relative w-24 h-24 bg-black/60 rounded-full flex items-center justify-center backdrop-blur-sm border border-white/10">
                <svg class="w-12 h-12 text-indigo-400" fill="none" viewBox="0 0 24 24" stroke="currentColor"><path stroke-linecap="round" stroke-linejoin="round" stroke-width="2" d="M10 20l4-16m4 4l4 4-4 4M6 16l-4-4 4-4"/></svg>
            </div>
        </div>
        <h1 class="text-6xl font-extrabold tracking-tight bg-clip-text text-transparent bg-gradient-to-r from-purple-400 via-pink-500 to-red-500">
            Build Your Vision
        </h1>
        <p class="text-lg text-gray-400 max-w-xl mx-auto">
            Describe the application you want to create in the chat. Let's turn your ideas into reality, one line of code at a time.
        </p>
        <div class="pt-4">
            <button class="animated-gradient text-white font-bold py-3 px-8 rounded-full shadow-lg shadow-indigo-500/30 transition-transform transform hover:scale-105">
                Start by typing "a todo app"
            </button>
        </div>
    </div>
</body>
</html>`
