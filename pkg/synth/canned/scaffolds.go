package canned

// todoScaffold is returned for instructions that mention a todo app. It is a
// complete document with a checklist container so the preview has something
// recognizable to render.
const todoScaffold = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Cosmic Todo App</title>
    <script src="https://cdn.tailwindcss.com"></script>
    <link rel="preconnect" href="https://fonts.googleapis.com">
    <link rel="preconnect" href="https://fonts.gstatic.com" crossorigin>
    <link href="https://fonts.googleapis.com/css2?family=Inter:wght@400;500;600;700&display=swap" rel="stylesheet">
    <style>
        body { font-family: 'Inter', sans-serif; }
        .task-item:hover .remove-btn { opacity: 1; transform: scale(1); }
        .remove-btn { opacity: 0; transform: scale(0.8); transition: opacity 0.2s, transform 0.2s; }
        @keyframes fadeIn { from { opacity: 0; transform: translateY(-10px); } to { opacity: 1; transform: translateY(0); } }
        .fade-in { animation: fadeIn 0.3s ease-out forwards; }
    </style>
</head>
<body class="bg-[#111827] text-gray-100">
    <div class="container mx-auto max-w-lg p-4 sm:p-8">
        <div class="bg-[#1F2937]/50 backdrop-blur-sm border border-gray-700/50 rounded-2xl shadow-2xl shadow-black/30 overflow-hidden">
            <div class="p-8">
                <div class="flex items-center gap-3 mb-6">
                    <div class="w-10 h-10 bg-gradient-to-br from-purple-500 to-cyan-400 rounded-lg flex items-center justify-center">
                        <svg xmlns="http://www.w3.org/2000/svg" class="h-6 w-6 text-white" fill="none" viewBox="0 0 24 24" stroke="currentColor"><path stroke-linecap="round" stroke-linejoin="round" stroke-width="2" d="M9 5H7a2 2 0 00-2 2v12a2 2 0 002 2h10a2 2 0 002-2V7a2 2 0 00-2-2h-2M9 5a2 2 0 002 2h2a2 2 0 002-2M9 5a2 2 0 012-2h2a2 2 0 012 2m-6 9l2 2 4-4"/></svg>
                    </div>
                    <h1 class="text-3xl font-bold text-white">Cosmic Tasks</h1>
                </div>

                <div class="flex gap-2 mb-6">
                    <input id="todo-input" type="text" class="bg-gray-800 text-white flex-grow p-3 rounded-lg focus:outline-none focus:ring-2 focus:ring-cyan-500 border border-gray-700" placeholder="Add a new mission...">
                    <button id="add-btn" class="bg-gradient-to-br from-cyan-500 to-blue-500 hover:from-cyan-400 hover:to-blue-400 text-white font-bold py-3 px-5 rounded-lg transition-transform transform hover:scale-105">Add</button>
                </div>
                <ul id="todo-list" class="space-y-3">
                </ul>
            </div>
        </div>
    </div>
    <script>
        const todoInput = document.getElementById('todo-input');
        const addBtn = document.getElementById('add-btn');
        const todoList = document.getElementById('todo-list');

        addBtn.addEventListener('click', () => {
            const taskText = todoInput.value.trim();
            if (taskText) {
                addTodoItem(taskText);
                todoInput.value = '';
            }
        });

        todoInput.addEventListener('keypress', (e) => {
            if (e.key === 'Enter') addBtn.click();
        });

        function addTodoItem(taskText) {
            const li = document.createElement('li');
            li.className = 'task-item flex justify-between items-center bg-gray-800/80 p-4 rounded-lg border border-gray-700 fade-in';

            const taskContent = document.createElement('div');
            taskContent.className = 'flex items-center gap-3';

            const checkbox = document.createElement('input');
            checkbox.type = 'checkbox';
            checkbox.className = 'form-checkbox h-5 w-5 rounded bg-gray-700 border-gray-600 text-cyan-500 focus:ring-cyan-600 cursor-pointer';
            checkbox.onchange = () => {
                span.classList.toggle('line-through');
                span.classList.toggle('text-gray-500');
            };

            const span = document.createElement('span');
            span.textContent = taskText;
            span.className = 'transition-colors';

            const deleteBtn = document.createElement('button');
            deleteBtn.innerHTML = '<svg xmlns="http://www.w3.org/2000/svg" class="h-5 w-5" viewBox="0 0 20 20" fill="currentColor"><path fill-rule="evenodd" d="M9 2a1 1 0 00-.894.553L7.382 4H4a1 1 0 000 2v10a2 2 0 002 2h8a2 2 0 002-2V6a1 1 0 100-2h-3.382l-.724-1.447A1 1 0 0011 2H9zM7 8a1 1 0 012 0v6a1 1 0 11-2 0V8zm5-1a1 1 0 00-1 1v6a1 1 0 102 0V8a1 1 0 00-1-1z" clip-rule="evenodd" /></svg>';
            deleteBtn.className = 'remove-btn text-gray-500 hover:text-red-500';
            deleteBtn.onclick = () => li.remove();

            taskContent.appendChild(checkbox);
            taskContent.appendChild(span);
            li.appendChild(taskContent);
            li.appendChild(deleteBtn);
            todoList.prepend(li);
        }
    </script>
</body>
</html>`

// fallbackScaffold echoes the instruction back; %s is the instruction.
const fallbackScaffold = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Vibe Code Generated App</title>
    <script src="https://cdn.tailwindcss.com"></script>
</head>
<body class="bg-gray-950 text-white flex items-center justify-center h-screen">
    <div class="text-center p-4">
        <h1 class="text-5xl font-extrabold mb-4 bg-clip-text text-transparent bg-gradient-to-r from-purple-400 to-pink-600">Prompt Received!</h1>
        <p class="text-xl text-gray-400">"%s"</p>
        <p class="text-md text-gray-500 mt-4">This is a canned response. To use the real Gemini API, please provide your API key.</p>
    </div>
</body>
</html>`
